package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prismbox/internal/grapheme"
)

func newMeasureCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "measure <text>",
		Short: "Show the visual width and cluster breakdown of text",
		Long: `Measure how many terminal columns the text occupies and break it
into grapheme clusters with their classification. Useful when a frame
looks misaligned and you want to know which cluster is to blame.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeasure(cmd, strings.Join(args, " "))
		},
	}

	return cmd
}

func runMeasure(cmd *cobra.Command, text string) error {
	out := cmd.OutOrStdout()

	width, ambiguous := grapheme.Measure(text)
	fmt.Fprintf(out, "width: %d\n", width)
	if ambiguous {
		fmt.Fprintln(out, "note: contains East Asian ambiguous characters; some terminals draw them double width")
	}

	for _, cl := range grapheme.Split(text) {
		label := cl.Category.String()
		if cl.Ambiguous {
			label += " (ambiguous)"
		}
		fmt.Fprintf(out, "%-16s %2d  %s\n", fmt.Sprintf("%q", cl.Text), cl.Width, label)
	}
	return nil
}
