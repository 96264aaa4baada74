package frame

import (
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/prismbox/pkg/errors"
)

// BorderSet holds the glyphs one border style draws with. The title
// joints bracket a title embedded in the top edge.
type BorderSet struct {
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
	Horizontal  string
	Vertical    string
	TitleLeft   string
	TitleRight  string
}

// borderStyles maps style names to glyph sets. "none" draws nothing
// and is special-cased by the renderer; it stays in the table so name
// validation treats it like any other style.
var borderStyles = map[string]BorderSet{
	"normal":  {"┌", "┐", "└", "┘", "─", "│", "┤", "├"},
	"rounded": {"╭", "╮", "╰", "╯", "─", "│", "┤", "├"},
	"thick":   {"┏", "┓", "┗", "┛", "━", "┃", "┫", "┣"},
	"double":  {"╔", "╗", "╚", "╝", "═", "║", "╣", "╠"},
	"ascii":   {"+", "+", "+", "+", "-", "|", "|", "|"},
	"dotted":  {"┌", "┐", "└", "┘", "┄", "┆", "┤", "├"},
	"hidden":  {" ", " ", " ", " ", " ", " ", " ", " "},
	"none":    {},
}

// LookupBorder resolves a style name to its glyph set. The empty name
// means normal. Unknown names report every valid style.
func LookupBorder(name string) (BorderSet, error) {
	key := normalizeStyle(name)
	set, ok := borderStyles[key]
	if !ok {
		return BorderSet{}, errors.NewBorderStyleError(name, Styles())
	}
	return set, nil
}

// Styles returns the valid border style names in sorted order.
func Styles() []string {
	out := make([]string, 0, len(borderStyles))
	for name := range borderStyles {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func normalizeStyle(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return "normal"
	}
	return key
}
