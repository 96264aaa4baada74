package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose bool
	noColor bool
	output  string
	theme   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "prismbox",
		Short:         "Prismbox draws framed, gradient-colored text blocks in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", "auto", "Output mode: auto, ansi, plain, or html")
	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", "Path to a theme file")

	cmd.AddCommand(newBoxCmd(flags))
	cmd.AddCommand(newGradientCmd(flags))
	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newStylesCmd())
	cmd.AddCommand(newColorsCmd(flags))
	cmd.AddCommand(newMeasureCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
