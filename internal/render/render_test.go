package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/prismbox/internal/color"
	"github.com/alexisbeaulieu97/prismbox/internal/termcaps"
)

func rgb(r, g, b uint8) *color.RGB {
	c := color.FromTriple(r, g, b)
	return &c
}

func TestLineTextAndWidth(t *testing.T) {
	t.Parallel()

	line := Line{
		{Text: "│", Border: true},
		{Text: " ✅ done ", Color: rgb(255, 0, 0)},
		{Text: "│", Border: true},
	}

	assert.Equal(t, "│ ✅ done │", line.Text())
	assert.Equal(t, 11, line.Width())
}

func TestCompactMergesEqualStyles(t *testing.T) {
	t.Parallel()

	red := rgb(255, 0, 0)
	line := Line{
		{Text: "a", Color: red},
		{Text: "b", Color: rgb(255, 0, 0)},
		{Text: "c", Color: rgb(0, 0, 255)},
		{Text: ""},
		{Text: "d"},
	}

	got := Compact(line)
	require.Len(t, got, 3)
	assert.Equal(t, "ab", got[0].Text)
	assert.Equal(t, "c", got[1].Text)
	assert.Equal(t, "d", got[2].Text)
}

func TestCompactKeepsBorderBoundary(t *testing.T) {
	t.Parallel()

	line := Line{
		{Text: "│", Border: true},
		{Text: "content"},
	}

	got := Compact(line)
	require.Len(t, got, 2)
	assert.True(t, got[0].Border)
	assert.False(t, got[1].Border)
}

func TestPlainWriter(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{{Text: "top", Color: rgb(1, 2, 3)}},
		{{Text: "bottom", Bold: true}},
	}

	assert.Equal(t, "top\nbottom", PlainWriter{}.Render(lines))
}

func TestANSIWriterTrueColor(t *testing.T) {
	t.Parallel()

	w := ANSIWriter{Profile: termcaps.TrueColor()}
	line := Line{
		{Text: "red", Color: rgb(255, 0, 0)},
		{Text: " plain"},
	}

	got := w.RenderLine(line)
	assert.Equal(t, "\x1b[38;2;255;0;0mred\x1b[0m plain", got)
}

func TestANSIWriterBoldAndColorShareSequence(t *testing.T) {
	t.Parallel()

	w := ANSIWriter{Profile: termcaps.TrueColor()}
	line := Line{{Text: "hot", Color: rgb(255, 105, 180), Bold: true}}

	assert.Equal(t, "\x1b[1;38;2;255;105;180mhot\x1b[0m", w.RenderLine(line))
}

func TestANSIWriter256Quantizes(t *testing.T) {
	t.Parallel()

	p := termcaps.TrueColor()
	p.Depth = termcaps.Depth256
	w := ANSIWriter{Profile: p}

	// Pure red maps to cube corner 196.
	got := w.RenderLine(Line{{Text: "x", Color: rgb(255, 0, 0)}})
	assert.Equal(t, "\x1b[38;5;196mx\x1b[0m", got)
}

func TestANSIWriter16Folds(t *testing.T) {
	t.Parallel()

	p := termcaps.TrueColor()
	p.Depth = termcaps.Depth8
	w := ANSIWriter{Profile: p}

	// Pure red folds through the 256 cube onto bright red.
	assert.Equal(t, "\x1b[91mx\x1b[0m", w.RenderLine(Line{{Text: "x", Color: rgb(255, 0, 0)}}))
	// Near black folds onto regular black.
	assert.Equal(t, "\x1b[30mx\x1b[0m", w.RenderLine(Line{{Text: "x", Color: rgb(5, 5, 5)}}))
}

func TestANSIWriterDisabledProfile(t *testing.T) {
	t.Parallel()

	w := ANSIWriter{Profile: termcaps.Profile{ANSI: false}}
	line := Line{{Text: "no color", Color: rgb(255, 0, 0)}}

	assert.Equal(t, "no color", w.RenderLine(line))
}

func TestANSIWriterResetsBetweenStyles(t *testing.T) {
	t.Parallel()

	w := ANSIWriter{Profile: termcaps.TrueColor()}
	line := Line{
		{Text: "a", Color: rgb(255, 0, 0)},
		{Text: "b", Color: rgb(0, 255, 0)},
	}

	got := w.RenderLine(line)
	assert.Equal(t, "\x1b[38;2;255;0;0ma\x1b[0m\x1b[38;2;0;255;0mb\x1b[0m", got)
}

func TestANSIWriterJoinsLines(t *testing.T) {
	t.Parallel()

	w := ANSIWriter{Profile: termcaps.TrueColor()}
	lines := []Line{
		{{Text: "one"}},
		{{Text: "two"}},
	}

	assert.Equal(t, "one\ntwo", w.Render(lines))
}

func TestHTMLWriter(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{{Text: "<b> & co", Color: rgb(255, 0, 85)}},
		{{Text: "plain"}},
		{{Text: "bold", Bold: true}},
	}

	got := HTMLWriter{}.Render(lines)
	assert.Equal(t,
		`<pre><span style="color:#ff0055">&lt;b&gt; &amp; co</span>`+"\n"+
			`plain`+"\n"+
			`<span style="font-weight:bold">bold</span></pre>`,
		got)
}
