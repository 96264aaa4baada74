package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/prismbox/internal/color"
	"github.com/alexisbeaulieu97/prismbox/internal/config"
	"github.com/alexisbeaulieu97/prismbox/internal/frame"
	"github.com/alexisbeaulieu97/prismbox/internal/grapheme"
	prismerrors "github.com/alexisbeaulieu97/prismbox/pkg/errors"
)

type boxOptions struct {
	Title         string
	TitleAlign    string
	TitleOverflow string
	Border        string
	Width         int
	MinWidth      int
	MaxWidth      int
	Padding       int
	Align         string
	BorderColor   string
	ContentColor  string
	TitleColor    string
	Stops         []string
	Rainbow       bool
	Position      string
	Space         string
	Target        string
	Phase         float64
}

var boxCmdRunner = runBox

func newBoxCmd(root *rootFlags) *cobra.Command {
	opts := boxOptions{}

	cmd := &cobra.Command{
		Use:   "box [text...]",
		Short: "Draw a framed box around text",
		Long: `Draw a framed box around the given text. Each argument becomes one
content line; with no arguments the content is read from stdin. Flags
override the theme, and --gradient or --rainbow replaces the theme
gradient.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := contentLines(cmd, args)
			if err != nil {
				return err
			}
			return boxCmdRunner(cmd, root, opts, lines)
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "Title embedded in the top edge")
	cmd.Flags().StringVar(&opts.TitleAlign, "title-align", "", "Title alignment: left, center, or right")
	cmd.Flags().StringVar(&opts.TitleOverflow, "title-overflow", "", "Overflow policy for long titles: ellipsis or clip")
	cmd.Flags().StringVarP(&opts.Border, "border", "b", "", "Border style (see 'prismbox styles')")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "Force the total frame width")
	cmd.Flags().IntVar(&opts.MinWidth, "min-width", 0, "Lower bound for the natural width")
	cmd.Flags().IntVar(&opts.MaxWidth, "max-width", 0, "Upper bound for the natural width")
	cmd.Flags().IntVarP(&opts.Padding, "padding", "p", 0, "Blank columns inside the border")
	cmd.Flags().StringVarP(&opts.Align, "align", "a", "", "Content alignment: left, center, or right")
	cmd.Flags().StringVar(&opts.BorderColor, "border-color", "", "Border color (name, #rgb, #rrggbb, or rgb(r,g,b))")
	cmd.Flags().StringVar(&opts.ContentColor, "content-color", "", "Content color")
	cmd.Flags().StringVar(&opts.TitleColor, "title-color", "", "Title color")
	cmd.Flags().StringSliceVar(&opts.Stops, "gradient", nil, "Gradient color stops")
	cmd.Flags().BoolVar(&opts.Rainbow, "rainbow", false, "Use the rainbow gradient")
	cmd.Flags().StringVar(&opts.Position, "position", "", "Gradient axis: vertical, horizontal, or diagonal")
	cmd.Flags().StringVar(&opts.Space, "space", "", "Gradient interpolation space: rgb or hsv")
	cmd.Flags().StringVar(&opts.Target, "target", "", "Gradient target: both, content, or border")
	cmd.Flags().Float64Var(&opts.Phase, "phase", 0, "Gradient phase offset in [0, 1)")

	return cmd
}

func runBox(cmd *cobra.Command, root *rootFlags, opts boxOptions, lines []string) error {
	log, err := newCommandLogger(root.verbose)
	if err != nil {
		return err
	}

	theme, err := loadTheme(root)
	if err != nil {
		return err
	}

	spec, err := theme.Spec(lines, opts.Title)
	if err != nil {
		return err
	}

	if err := applyBoxOverrides(cmd, opts, &spec); err != nil {
		return err
	}

	writer, err := writerFor(root)
	if err != nil {
		return err
	}

	rendered, err := frame.Render(spec)
	if err != nil {
		return err
	}

	log.WithFields(map[string]any{
		"theme":  theme.Name,
		"border": spec.Border,
		"rows":   len(rendered),
	}).Debug("rendered frame")

	fmt.Fprintln(cmd.OutOrStdout(), writer.Render(rendered))
	return nil
}

// applyBoxOverrides folds changed flags into the theme-derived spec.
func applyBoxOverrides(cmd *cobra.Command, opts boxOptions, spec *frame.Spec) error {
	flags := cmd.Flags()

	if flags.Changed("border") {
		spec.Border = opts.Border
	}
	if flags.Changed("width") {
		spec.Width = opts.Width
	}
	if flags.Changed("min-width") {
		spec.MinWidth = opts.MinWidth
	}
	if flags.Changed("max-width") {
		spec.MaxWidth = opts.MaxWidth
	}
	if flags.Changed("padding") {
		spec.Padding = opts.Padding
	}
	if flags.Changed("align") {
		align, err := grapheme.ParseAlign(opts.Align)
		if err != nil {
			return err
		}
		spec.Align = align
	}
	if flags.Changed("title-align") {
		align, err := grapheme.ParseAlign(opts.TitleAlign)
		if err != nil {
			return err
		}
		spec.TitleAlign = align
	}
	if flags.Changed("title-overflow") {
		overflow, err := frame.ParseOverflow(opts.TitleOverflow)
		if err != nil {
			return err
		}
		spec.TitleOverflow = overflow
	}

	var err error
	if spec.BorderColor, err = overrideColor(flags.Changed("border-color"), opts.BorderColor, spec.BorderColor); err != nil {
		return err
	}
	if spec.ContentColor, err = overrideColor(flags.Changed("content-color"), opts.ContentColor, spec.ContentColor); err != nil {
		return err
	}
	if spec.TitleColor, err = overrideColor(flags.Changed("title-color"), opts.TitleColor, spec.TitleColor); err != nil {
		return err
	}

	if opts.Rainbow && len(opts.Stops) > 0 {
		return prismerrors.NewValidationError("gradient", "--rainbow and --gradient are mutually exclusive", nil)
	}
	if opts.Rainbow || len(opts.Stops) > 0 {
		gc := config.GradientConfig{
			Position: opts.Position,
			Space:    opts.Space,
			Target:   opts.Target,
			Phase:    opts.Phase,
			Rainbow:  opts.Rainbow,
			Stops:    opts.Stops,
		}
		req, err := gc.Request()
		if err != nil {
			return err
		}
		spec.Gradient = req
	}

	return nil
}

func overrideColor(changed bool, value string, current *color.RGB) (*color.RGB, error) {
	if !changed {
		return current, nil
	}
	c, err := color.Parse(value)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
