package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prismbox/internal/config"
	"github.com/alexisbeaulieu97/prismbox/internal/gradient"
	"github.com/alexisbeaulieu97/prismbox/internal/grapheme"
	"github.com/alexisbeaulieu97/prismbox/internal/render"
	prismerrors "github.com/alexisbeaulieu97/prismbox/pkg/errors"
)

type gradientOptions struct {
	Stops    []string
	Rainbow  bool
	Position string
	Space    string
	Phase    float64
	Bold     bool
}

var gradientCmdRunner = runGradient

func newGradientCmd(root *rootFlags) *cobra.Command {
	opts := gradientOptions{}

	cmd := &cobra.Command{
		Use:   "gradient [text...]",
		Short: "Color text with a gradient, no frame",
		Long: `Color raw text lines with a gradient. Each argument becomes one
line; with no arguments the text is read from stdin. Without --stops
the rainbow is used. Lines are padded to equal width so the gradient
geometry stays consistent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := contentLines(cmd, args)
			if err != nil {
				return err
			}
			return gradientCmdRunner(cmd, root, opts, lines)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Stops, "stops", nil, "Gradient color stops")
	cmd.Flags().BoolVar(&opts.Rainbow, "rainbow", false, "Use the rainbow gradient")
	cmd.Flags().StringVar(&opts.Position, "position", "horizontal", "Gradient axis: vertical, horizontal, or diagonal")
	cmd.Flags().StringVar(&opts.Space, "space", "", "Interpolation space: rgb or hsv")
	cmd.Flags().Float64Var(&opts.Phase, "phase", 0, "Phase offset in [0, 1)")
	cmd.Flags().BoolVar(&opts.Bold, "bold", false, "Render the text bold")

	return cmd
}

func runGradient(cmd *cobra.Command, root *rootFlags, opts gradientOptions, lines []string) error {
	if opts.Rainbow && len(opts.Stops) > 0 {
		return prismerrors.NewValidationError("stops", "--rainbow and --stops are mutually exclusive", nil)
	}

	gc := config.GradientConfig{
		Position: opts.Position,
		Space:    opts.Space,
		Phase:    opts.Phase,
		Rainbow:  opts.Rainbow || len(opts.Stops) == 0,
		Stops:    opts.Stops,
	}
	req, err := gc.Request()
	if err != nil {
		return err
	}

	widest := 0
	for _, line := range lines {
		if w := grapheme.Width(line); w > widest {
			widest = w
		}
	}
	if widest == 0 {
		return prismerrors.NewValidationError("text", "nothing to color", nil)
	}

	block := make([]render.Line, len(lines))
	for i, line := range lines {
		block[i] = render.Line{{Text: grapheme.PadRight(line, widest), Bold: opts.Bold}}
	}

	colored, err := gradient.Apply(block, *req)
	if err != nil {
		return err
	}

	writer, err := writerFor(root)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), writer.Render(colored))
	return nil
}
