// Package render models styled terminal output as lines of spans and
// serializes them for different sinks. Writers consume the structured
// stream directly; nothing here re-parses escape sequences.
package render

import (
	"strings"

	"github.com/alexisbeaulieu97/prismbox/internal/color"
	"github.com/alexisbeaulieu97/prismbox/internal/grapheme"
)

// Span is a run of text sharing one style. A nil Color means the
// terminal default. Border marks spans belonging to the frame rather
// than the content, which color targeting relies on.
type Span struct {
	Text   string
	Color  *color.RGB
	Bold   bool
	Border bool
}

// Line is one row of output.
type Line []Span

// Text returns the row's text without any styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Width returns the row's visual width in columns.
func (l Line) Width() int {
	return grapheme.Width(l.Text())
}

// Texts returns the plain text of every line.
func Texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text()
	}
	return out
}

// Compact merges adjacent spans that share a style, shrinking
// serializer output. Empty spans disappear.
func Compact(line Line) Line {
	if len(line) == 0 {
		return line
	}
	out := make(Line, 0, len(line))
	cur := line[0]
	for _, s := range line[1:] {
		if s.Bold == cur.Bold && s.Border == cur.Border && sameColor(s.Color, cur.Color) {
			cur.Text += s.Text
			continue
		}
		if cur.Text != "" {
			out = append(out, cur)
		}
		cur = s
	}
	if cur.Text != "" {
		out = append(out, cur)
	}
	return out
}

func sameColor(a, b *color.RGB) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
