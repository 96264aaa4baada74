package render

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/prismbox/internal/ansi"
	"github.com/alexisbeaulieu97/prismbox/internal/color"
	"github.com/alexisbeaulieu97/prismbox/internal/termcaps"
)

// Writer serializes rendered lines.
type Writer interface {
	Render(lines []Line) string
}

// PlainWriter drops all styling and emits text only.
type PlainWriter struct{}

// Render implements Writer.
func (PlainWriter) Render(lines []Line) string {
	return strings.Join(Texts(lines), "\n")
}

// ANSIWriter emits SGR-styled lines fit for a terminal profile. Colors
// degrade to the nearest palette entry the profile can express.
type ANSIWriter struct {
	Profile termcaps.Profile
}

// Render implements Writer.
func (w ANSIWriter) Render(lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = w.RenderLine(l)
	}
	return strings.Join(parts, "\n")
}

// RenderLine serializes one row. Styling resets whenever it changes and
// again at end of line, so a copied row never bleeds into its
// surroundings.
func (w ANSIWriter) RenderLine(line Line) string {
	if !w.Profile.ANSI {
		return line.Text()
	}
	var b strings.Builder
	cur := ""
	for _, span := range Compact(line) {
		want := w.sgr(span)
		if want != cur {
			if cur != "" {
				b.WriteString(ansi.Reset)
			}
			b.WriteString(want)
			cur = want
		}
		b.WriteString(span.Text)
	}
	if cur != "" {
		b.WriteString(ansi.Reset)
	}
	return b.String()
}

func (w ANSIWriter) sgr(s Span) string {
	if s.Color == nil && !s.Bold {
		return ""
	}
	params := make([]string, 0, 2)
	if s.Bold {
		params = append(params, "1")
	}
	if s.Color != nil {
		c := *s.Color
		switch w.Profile.Depth {
		case termcaps.DepthTrueColor:
			params = append(params, fmt.Sprintf("38;2;%d;%d;%d", c.R, c.G, c.B))
		case termcaps.Depth256:
			params = append(params, fmt.Sprintf("38;5;%d", color.Nearest256(c)))
		default:
			idx := color.Fold16(color.Nearest256(c))
			if idx < 8 {
				params = append(params, strconv.Itoa(30+int(idx)))
			} else {
				params = append(params, strconv.Itoa(90+int(idx)-8))
			}
		}
	}
	return "\x1b[" + strings.Join(params, ";") + "m"
}

// HTMLWriter emits a <pre> block with inline styles, HTML-escaped.
type HTMLWriter struct{}

// Render implements Writer.
func (HTMLWriter) Render(lines []Line) string {
	var b strings.Builder
	b.WriteString("<pre>")
	for i, l := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, span := range Compact(l) {
			text := html.EscapeString(span.Text)
			style := spanStyle(span)
			if style == "" {
				b.WriteString(text)
				continue
			}
			b.WriteString(`<span style="`)
			b.WriteString(style)
			b.WriteString(`">`)
			b.WriteString(text)
			b.WriteString("</span>")
		}
	}
	b.WriteString("</pre>")
	return b.String()
}

func spanStyle(s Span) string {
	var parts []string
	if s.Color != nil {
		parts = append(parts, "color:"+s.Color.Hex())
	}
	if s.Bold {
		parts = append(parts, "font-weight:bold")
	}
	return strings.Join(parts, ";")
}
