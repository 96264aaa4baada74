// Package gradient paints rectangular blocks of rendered lines with
// position-driven color. A request combines three independent choices:
// how a cell's coordinates map to a stop position (Position), how that
// position maps to a color (Source), and which cells get painted
// (Target). The set of choices is closed; there is no plugin surface.
package gradient

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexisbeaulieu97/prismbox/internal/color"
	"github.com/alexisbeaulieu97/prismbox/internal/grapheme"
	"github.com/alexisbeaulieu97/prismbox/internal/render"
	"github.com/alexisbeaulieu97/prismbox/pkg/errors"
)

// Position selects how a cell's coordinates map onto the gradient axis.
type Position int

const (
	Vertical Position = iota
	Horizontal
	Diagonal
)

var positionNames = map[Position]string{
	Vertical:   "vertical",
	Horizontal: "horizontal",
	Diagonal:   "diagonal",
}

// String implements fmt.Stringer.
func (p Position) String() string {
	if name, ok := positionNames[p]; ok {
		return name
	}
	return "vertical"
}

// ParsePosition resolves a position name. The empty string means
// vertical.
func ParsePosition(name string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	case "diagonal":
		return Diagonal, nil
	}
	return Vertical, errors.NewValidationError("position", fmt.Sprintf("unknown gradient position %q (valid: vertical, horizontal, diagonal)", name), nil)
}

// Space selects the interpolation space between adjacent stops.
type Space int

const (
	SpaceRGB Space = iota
	SpaceHSV
)

// String implements fmt.Stringer.
func (s Space) String() string {
	if s == SpaceHSV {
		return "hsv"
	}
	return "rgb"
}

// ParseSpace resolves a space name. The empty string means RGB.
func ParseSpace(name string) (Space, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rgb":
		return SpaceRGB, nil
	case "hsv":
		return SpaceHSV, nil
	}
	return SpaceRGB, errors.NewValidationError("space", fmt.Sprintf("unknown color space %q (valid: rgb, hsv)", name), nil)
}

// Target filters which cells a gradient paints.
type Target int

const (
	TargetBoth Target = iota
	TargetContent
	TargetBorder
)

var targetNames = map[Target]string{
	TargetBoth:    "both",
	TargetContent: "content",
	TargetBorder:  "border",
}

// String implements fmt.Stringer.
func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return "both"
}

// ParseTarget resolves a target name. The empty string means both.
func ParseTarget(name string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "both":
		return TargetBoth, nil
	case "content", "text":
		return TargetContent, nil
	case "border", "frame":
		return TargetBorder, nil
	}
	return TargetBoth, errors.NewValidationError("target", fmt.Sprintf("unknown gradient target %q (valid: both, content, border)", name), nil)
}

func (t Target) covers(border bool) bool {
	switch t {
	case TargetContent:
		return !border
	case TargetBorder:
		return border
	default:
		return true
	}
}

type sourceKind int

const (
	kindNone sourceKind = iota
	kindLinear
	kindRainbow
	kindPalette
)

// rainbowStops is the fixed reference palette behind Rainbow, red
// through violet.
var rainbowStops = []color.RGB{
	{R: 255, G: 0, B: 0},
	{R: 255, G: 165, B: 0},
	{R: 255, G: 255, B: 0},
	{R: 0, G: 255, B: 0},
	{R: 0, G: 0, B: 255},
	{R: 75, G: 0, B: 130},
	{R: 148, G: 0, B: 211},
}

// Source maps positions to colors. The variants are closed: a two-stop
// linear blend, the fixed rainbow palette, or a caller-supplied stop
// list. The zero value has no stops and fails Apply; use the
// constructors.
type Source struct {
	kind  sourceKind
	space Space
	stops []color.RGB
}

// Linear blends between two colors.
func Linear(start, end color.RGB, space Space) Source {
	return Source{kind: kindLinear, space: space, stops: []color.RGB{start, end}}
}

// Rainbow walks the fixed seven-stop reference palette.
func Rainbow() Source {
	return Source{kind: kindRainbow, space: SpaceRGB, stops: rainbowStops}
}

// Palette blends across arbitrary ordered stops, evenly spaced. A
// single stop paints flat.
func Palette(stops []color.RGB, space Space) Source {
	return Source{kind: kindPalette, space: space, stops: append([]color.RGB(nil), stops...)}
}

// String implements fmt.Stringer.
func (s Source) String() string {
	switch s.kind {
	case kindLinear:
		return fmt.Sprintf("linear(%s, %s, %s)", s.stops[0].Hex(), s.stops[1].Hex(), s.space)
	case kindRainbow:
		return "rainbow"
	case kindPalette:
		return fmt.Sprintf("palette(%d stops, %s)", len(s.stops), s.space)
	default:
		return "none"
	}
}

// At resolves the color at position t in [0,1]. Stops pair off
// adjacently: the segment index is floor(t*(N-1)) clamped to the last
// pair, and the local position rescales within it, so t=0 and t=1 land
// exactly on the first and last stop.
func (s Source) At(t float64) color.RGB {
	n := len(s.stops)
	switch n {
	case 0:
		return color.RGB{}
	case 1:
		return s.stops[0]
	}
	if t < 0 || math.IsNaN(t) {
		t = 0
	} else if t > 1 {
		t = 1
	}
	scaled := t * float64(n-1)
	seg := int(scaled)
	if seg > n-2 {
		seg = n - 2
	}
	local := scaled - float64(seg)
	if s.space == SpaceHSV {
		return color.LerpHSV(s.stops[seg], s.stops[seg+1], local)
	}
	return color.Lerp(s.stops[seg], s.stops[seg+1], local)
}

func (s Source) valid() bool {
	return len(s.stops) > 0
}

// Request describes one gradient application.
type Request struct {
	Position Position
	Source   Source
	Target   Target
	Phase    float64
}

// Apply paints lines with the requested gradient and returns the
// result; the input slice is not modified. Rows must share one visual
// width, since a ragged block has no geometry for the position
// strategies to work on. Cells outside the target keep their existing
// style. Output rows keep the input's text and widths exactly.
func Apply(lines []render.Line, req Request) ([]render.Line, error) {
	if len(lines) == 0 {
		return nil, errors.NewLayoutError("gradient block has no rows")
	}
	if !req.Source.valid() {
		return nil, errors.NewLayoutError("gradient source has no color stops")
	}
	cols := lines[0].Width()
	if cols <= 0 {
		return nil, errors.NewLayoutError("gradient block has no columns")
	}
	for i, line := range lines[1:] {
		if w := line.Width(); w != cols {
			return nil, errors.NewLayoutError("row %d width %d does not match row 0 width %d", i+1, w, cols)
		}
	}

	rows := len(lines)
	denomRow := float64(max(rows-1, 1))
	denomCol := float64(max(cols-1, 1))

	out := make([]render.Line, rows)
	for r, line := range lines {
		painted := make(render.Line, 0, len(line))
		col := 0
		for _, span := range line {
			if !req.Target.covers(span.Border) {
				painted = append(painted, span)
				col += grapheme.Width(span.Text)
				continue
			}
			// A wide cluster takes its color from its leading column.
			for _, cl := range grapheme.Split(span.Text) {
				c := req.Source.At(req.position(r, col, denomRow, denomCol))
				painted = append(painted, render.Span{
					Text:   cl.Text,
					Color:  &c,
					Bold:   span.Bold,
					Border: span.Border,
				})
				col += cl.Width
			}
		}
		out[r] = render.Compact(painted)
	}
	return out, nil
}

// position maps a cell to its stop position, folding any phase offset
// back into [0,1) so animated renders cycle smoothly.
func (req Request) position(row, col int, denomRow, denomCol float64) float64 {
	var t float64
	switch req.Position {
	case Horizontal:
		t = float64(col) / denomCol
	case Diagonal:
		t = (float64(row)/denomRow + float64(col)/denomCol) / 2
	default:
		t = float64(row) / denomRow
	}
	if req.Phase != 0 {
		t = math.Mod(t+req.Phase, 1.0)
		if t < 0 {
			t += 1.0
		}
	}
	return t
}
