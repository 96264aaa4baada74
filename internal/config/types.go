package config

import (
	"github.com/alexisbeaulieu97/prismbox/internal/color"
	"github.com/alexisbeaulieu97/prismbox/internal/frame"
	"github.com/alexisbeaulieu97/prismbox/internal/gradient"
	"github.com/alexisbeaulieu97/prismbox/internal/grapheme"
)

// Theme represents one theme document: a reusable bundle of frame
// geometry, colors and an optional gradient that callers combine with
// their own content.
type Theme struct {
	Version     string          `yaml:"version" validate:"required,semver"`
	Name        string          `yaml:"name" validate:"required,min=1,max=100,theme_name"`
	Description string          `yaml:"description,omitempty"`
	Frame       FrameConfig     `yaml:"frame,omitempty"`
	Colors      ColorConfig     `yaml:"colors,omitempty"`
	Gradient    *GradientConfig `yaml:"gradient,omitempty"`
}

// FrameConfig holds the geometry and border settings of a theme.
type FrameConfig struct {
	Border        string `yaml:"border,omitempty" validate:"omitempty,border_style"`
	Padding       int    `yaml:"padding,omitempty" validate:"omitempty,min=0,max=16"`
	Align         string `yaml:"align,omitempty" validate:"omitempty,alignment"`
	TitleAlign    string `yaml:"title_align,omitempty" validate:"omitempty,alignment"`
	TitleOverflow string `yaml:"title_overflow,omitempty" validate:"omitempty,oneof=ellipsis clip"`
	Width         int    `yaml:"width,omitempty" validate:"omitempty,min=1"`
	MinWidth      int    `yaml:"min_width,omitempty" validate:"omitempty,min=1"`
	MaxWidth      int    `yaml:"max_width,omitempty" validate:"omitempty,min=1"`
}

// ColorConfig names the flat colors of a theme. Every value is a color
// descriptor: a CSS name, #rgb, #rrggbb, or rgb(r,g,b).
type ColorConfig struct {
	Border  string `yaml:"border,omitempty" validate:"omitempty,colorspec"`
	Content string `yaml:"content,omitempty" validate:"omitempty,colorspec"`
	Title   string `yaml:"title,omitempty" validate:"omitempty,colorspec"`
}

// GradientConfig describes a theme gradient. Either Rainbow is set or
// Stops carries the color ramp; cross-field checks live in
// ValidateTheme.
type GradientConfig struct {
	Position string   `yaml:"position,omitempty" validate:"omitempty,oneof=vertical horizontal diagonal"`
	Space    string   `yaml:"space,omitempty" validate:"omitempty,oneof=rgb hsv"`
	Target   string   `yaml:"target,omitempty" validate:"omitempty,oneof=both content border"`
	Phase    float64  `yaml:"phase,omitempty" validate:"omitempty,gte=0,lte=1"`
	Rainbow  bool     `yaml:"rainbow,omitempty"`
	Stops    []string `yaml:"stops,omitempty" validate:"omitempty,dive,colorspec"`
}

// DefaultTheme returns the theme used when no document is supplied.
func DefaultTheme() *Theme {
	return &Theme{
		Version: "1.0",
		Name:    "default",
		Frame:   FrameConfig{Border: "rounded", Padding: 1},
	}
}

// Spec combines the theme with content into a renderable frame spec.
// The theme is expected to have passed validation; parse failures from
// hand-built themes still surface as errors.
func (t *Theme) Spec(lines []string, title string) (frame.Spec, error) {
	spec := frame.Spec{
		Lines:    lines,
		Title:    title,
		Border:   t.Frame.Border,
		Width:    t.Frame.Width,
		MinWidth: t.Frame.MinWidth,
		MaxWidth: t.Frame.MaxWidth,
		Padding:  t.Frame.Padding,
	}

	align, err := grapheme.ParseAlign(t.Frame.Align)
	if err != nil {
		return frame.Spec{}, err
	}
	spec.Align = align

	titleAlign, err := grapheme.ParseAlign(t.Frame.TitleAlign)
	if err != nil {
		return frame.Spec{}, err
	}
	spec.TitleAlign = titleAlign

	overflow, err := frame.ParseOverflow(t.Frame.TitleOverflow)
	if err != nil {
		return frame.Spec{}, err
	}
	spec.TitleOverflow = overflow

	if spec.BorderColor, err = parseOptionalColor(t.Colors.Border); err != nil {
		return frame.Spec{}, err
	}
	if spec.ContentColor, err = parseOptionalColor(t.Colors.Content); err != nil {
		return frame.Spec{}, err
	}
	if spec.TitleColor, err = parseOptionalColor(t.Colors.Title); err != nil {
		return frame.Spec{}, err
	}

	if t.Gradient != nil {
		req, err := t.Gradient.Request()
		if err != nil {
			return frame.Spec{}, err
		}
		spec.Gradient = req
	}

	return spec, nil
}

func parseOptionalColor(spec string) (*color.RGB, error) {
	if spec == "" {
		return nil, nil
	}
	c, err := color.Parse(spec)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Request converts the config block to a gradient request.
func (g *GradientConfig) Request() (*gradient.Request, error) {
	pos, err := gradient.ParsePosition(g.Position)
	if err != nil {
		return nil, err
	}
	space, err := gradient.ParseSpace(g.Space)
	if err != nil {
		return nil, err
	}
	target, err := gradient.ParseTarget(g.Target)
	if err != nil {
		return nil, err
	}

	var src gradient.Source
	if g.Rainbow {
		src = gradient.Rainbow()
	} else {
		stops := make([]color.RGB, 0, len(g.Stops))
		for _, s := range g.Stops {
			c, err := color.Parse(s)
			if err != nil {
				return nil, err
			}
			stops = append(stops, c)
		}
		src = gradient.Palette(stops, space)
	}

	return &gradient.Request{Position: pos, Source: src, Target: target, Phase: g.Phase}, nil
}
