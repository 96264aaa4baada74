// Package frame assembles framed blocks: bordered, padded, optionally
// titled boxes around text, emitted as structured lines for the
// serializers. Rendering is a pure function of the spec; every
// returned row has the same visual width.
package frame

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/prismbox/internal/color"
	"github.com/alexisbeaulieu97/prismbox/internal/gradient"
	"github.com/alexisbeaulieu97/prismbox/internal/grapheme"
	"github.com/alexisbeaulieu97/prismbox/internal/render"
	"github.com/alexisbeaulieu97/prismbox/pkg/errors"
)

// Overflow selects what happens to a title wider than the space the
// top edge can give it.
type Overflow int

const (
	// OverflowEllipsis truncates the title and appends an ellipsis.
	OverflowEllipsis Overflow = iota
	// OverflowClip truncates the title with no marker.
	OverflowClip
)

var overflowNames = map[Overflow]string{
	OverflowEllipsis: "ellipsis",
	OverflowClip:     "clip",
}

func (o Overflow) String() string {
	if name, ok := overflowNames[o]; ok {
		return name
	}
	return "unknown"
}

// ParseOverflow converts a config or flag value to an overflow policy.
// The empty string means ellipsis.
func ParseOverflow(name string) (Overflow, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "ellipsis":
		return OverflowEllipsis, nil
	case "clip":
		return OverflowClip, nil
	default:
		return OverflowEllipsis, errors.NewValidationError("title_overflow", fmt.Sprintf("unknown overflow policy %q (valid: ellipsis, clip)", name), nil)
	}
}

// Spec describes one framed block.
type Spec struct {
	// Lines is the content, one entry per row. Entries may differ in
	// visual width; the layout pads them to a common inner width.
	Lines []string

	// Title is embedded in the top edge between the joint glyphs.
	// Empty means no title.
	Title         string
	TitleAlign    grapheme.Align
	TitleOverflow Overflow

	// Border names a style from the border table. Empty means normal.
	Border string

	// Width forces the total frame width. Zero sizes the frame to its
	// content, clamped to [MinWidth, MaxWidth] where those are set.
	Width    int
	MinWidth int
	MaxWidth int

	// Padding is the count of blank columns between the vertical
	// border glyphs and the content on each side.
	Padding int

	// Align positions each content line inside the inner width.
	Align grapheme.Align

	// Flat colors. A gradient, when set, wins over these for the
	// regions its target covers.
	BorderColor  *color.RGB
	ContentColor *color.RGB
	TitleColor   *color.RGB

	Gradient *gradient.Request
}

// Render lays out the spec and returns one styled line per terminal
// row: top edge, content rows, bottom edge. Styles named "none" omit
// the edges entirely.
func Render(spec Spec) ([]render.Line, error) {
	set, err := LookupBorder(spec.Border)
	if err != nil {
		return nil, err
	}
	bare := normalizeStyle(spec.Border) == "none"

	total, inner, err := measure(spec, bare)
	if err != nil {
		return nil, err
	}

	lines := assemble(spec, set, bare, total, inner)
	if err := verifyWidths(lines, total); err != nil {
		return nil, err
	}

	if spec.Gradient != nil {
		lines, err = gradient.Apply(lines, *spec.Gradient)
		if err != nil {
			return nil, err
		}
	}
	return lines, nil
}

// measure resolves the total and inner widths. The inner width is the
// columns available to content text between the padding runs.
func measure(spec Spec, bare bool) (total, inner int, err error) {
	if spec.Padding < 0 {
		return 0, 0, errors.NewDimensionsError("padding %d is negative", spec.Padding)
	}
	if spec.Width < 0 {
		return 0, 0, errors.NewDimensionsError("width %d is not positive", spec.Width)
	}
	if spec.MinWidth < 0 || spec.MaxWidth < 0 {
		return 0, 0, errors.NewDimensionsError("width bounds [%d, %d] are negative", spec.MinWidth, spec.MaxWidth)
	}
	if spec.MinWidth > 0 && spec.MaxWidth > 0 && spec.MinWidth > spec.MaxWidth {
		return 0, 0, errors.NewDimensionsError("min width %d exceeds max width %d", spec.MinWidth, spec.MaxWidth)
	}

	chrome := 2 + 2*spec.Padding
	if bare {
		chrome = 2 * spec.Padding
	}

	if spec.Width > 0 {
		inner = spec.Width - chrome
		if inner < 1 {
			return 0, 0, errors.NewDimensionsError("width %d leaves no room for content (need at least %d)", spec.Width, chrome+1)
		}
		return spec.Width, inner, nil
	}

	widest := 1
	for _, line := range spec.Lines {
		if w := grapheme.Width(line); w > widest {
			widest = w
		}
	}
	if spec.Title != "" {
		// Keep room for the title. Inside a border that includes the
		// joints and the horizontal run on each side.
		need := grapheme.Width(spec.Title) - 2*spec.Padding
		if !bare {
			need += 6
		}
		if need > widest {
			widest = need
		}
	}

	total = widest + chrome
	if spec.MinWidth > 0 && total < spec.MinWidth {
		total = spec.MinWidth
	}
	if spec.MaxWidth > 0 && total > spec.MaxWidth {
		total = spec.MaxWidth
	}
	inner = total - chrome
	if inner < 1 {
		return 0, 0, errors.NewDimensionsError("max width %d leaves no room for content (need at least %d)", spec.MaxWidth, chrome+1)
	}
	return total, inner, nil
}

func assemble(spec Spec, set BorderSet, bare bool, total, inner int) []render.Line {
	pad := strings.Repeat(" ", spec.Padding)
	out := make([]render.Line, 0, len(spec.Lines)+2)

	if bare {
		if spec.Title != "" {
			out = append(out, bareTitleRow(spec, total))
		}
	} else {
		out = append(out, topEdge(spec, set, total-2))
	}

	for _, text := range spec.Lines {
		content := grapheme.Pad(grapheme.Truncate(text, inner, ""), inner, spec.Align)
		var row render.Line
		if !bare {
			row = append(row, render.Span{Text: set.Vertical, Color: spec.BorderColor, Border: true})
		}
		row = append(row, render.Span{Text: pad + content + pad, Color: spec.ContentColor})
		if !bare {
			row = append(row, render.Span{Text: set.Vertical, Color: spec.BorderColor, Border: true})
		}
		out = append(out, row)
	}

	if !bare {
		bottom := set.BottomLeft + strings.Repeat(set.Horizontal, total-2) + set.BottomRight
		out = append(out, render.Line{{Text: bottom, Color: spec.BorderColor, Border: true}})
	}
	return out
}

// topEdge draws the top border row, embedding the title between the
// joint glyphs when one is set and the edge is wide enough to hold it.
func topEdge(spec Spec, set BorderSet, interior int) render.Line {
	plain := func() render.Line {
		text := set.TopLeft + strings.Repeat(set.Horizontal, interior) + set.TopRight
		return render.Line{{Text: text, Color: spec.BorderColor, Border: true}}
	}
	if spec.Title == "" {
		return plain()
	}
	maxTitle := interior - 6
	if maxTitle < 1 {
		return plain()
	}

	title := spec.Title
	if grapheme.Width(title) > maxTitle {
		tail := "…"
		if spec.TitleOverflow == OverflowClip {
			tail = ""
		}
		title = grapheme.Truncate(title, maxTitle, tail)
	}

	// The decorated title occupies joint, space, title, space, joint.
	rest := interior - grapheme.Width(title) - 4
	var left, right int
	switch spec.TitleAlign {
	case grapheme.AlignRight:
		left, right = rest-1, 1
	case grapheme.AlignCenter:
		left = rest / 2
		right = rest - left
	default:
		left, right = 1, rest-1
	}

	titleColor := spec.TitleColor
	if titleColor == nil {
		titleColor = spec.BorderColor
	}
	return render.Line{
		{Text: set.TopLeft + strings.Repeat(set.Horizontal, left) + set.TitleLeft + " ", Color: spec.BorderColor, Border: true},
		{Text: title, Color: titleColor, Border: true},
		{Text: " " + set.TitleRight + strings.Repeat(set.Horizontal, right) + set.TopRight, Color: spec.BorderColor, Border: true},
	}
}

// bareTitleRow renders the title as its own row when the frame has no
// border to embed it in.
func bareTitleRow(spec Spec, total int) render.Line {
	title := spec.Title
	if grapheme.Width(title) > total {
		tail := "…"
		if spec.TitleOverflow == OverflowClip {
			tail = ""
		}
		title = grapheme.Truncate(title, total, tail)
	}
	titleColor := spec.TitleColor
	if titleColor == nil {
		titleColor = spec.ContentColor
	}
	return render.Line{{Text: grapheme.Pad(title, total, spec.TitleAlign), Color: titleColor}}
}

func verifyWidths(lines []render.Line, total int) error {
	for i, line := range lines {
		if w := line.Width(); w != total {
			return errors.NewLayoutError("row %d width %d does not match frame width %d", i, w, total)
		}
	}
	return nil
}
