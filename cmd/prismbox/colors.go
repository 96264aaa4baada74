package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prismbox/internal/color"
	"github.com/alexisbeaulieu97/prismbox/internal/render"
)

type colorsOptions struct {
	Filter string
}

func newColorsCmd(root *rootFlags) *cobra.Command {
	opts := colorsOptions{}

	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List the named colors with swatches",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runColors(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "", "Only show names containing this substring")

	return cmd
}

func runColors(cmd *cobra.Command, root *rootFlags, opts colorsOptions) error {
	writer, err := writerFor(root)
	if err != nil {
		return err
	}

	filter := strings.ToLower(strings.TrimSpace(opts.Filter))
	var lines []render.Line
	for _, name := range color.Names() {
		if filter != "" && !strings.Contains(name, filter) {
			continue
		}
		c := color.MustParse(name)
		lines = append(lines, render.Line{
			{Text: "██ ", Color: &c},
			{Text: fmt.Sprintf("%-22s %s", name, c.Hex())},
		})
	}

	if len(lines) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no colors match %q\n", opts.Filter)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), writer.Render(lines))
	return nil
}
