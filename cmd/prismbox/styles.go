package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prismbox/internal/frame"
)

func newStylesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "List the border styles and their glyphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range frame.Styles() {
				set, err := frame.LookupBorder(name)
				if err != nil {
					return err
				}
				if set.TopLeft == "" {
					fmt.Fprintf(out, "%-8s (no border)\n", name)
					continue
				}
				fmt.Fprintf(out, "%-8s %s%s%s%s%s  %s text %s  %s%s%s%s%s\n",
					name,
					set.TopLeft, set.Horizontal, set.TitleLeft, set.TitleRight, set.TopRight,
					set.Vertical, set.Vertical,
					set.BottomLeft, set.Horizontal, set.Horizontal, set.Horizontal, set.BottomRight,
				)
			}
			return nil
		},
	}

	return cmd
}
