package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripPlainTextPassesThrough(t *testing.T) {
	t.Parallel()

	plain, marks := Strip("hello, box")

	assert.Equal(t, "hello, box", plain)
	assert.Empty(t, marks)
}

func TestStripRecordsAnchoredSequences(t *testing.T) {
	t.Parallel()

	plain, marks := Strip("\x1b[31mred\x1b[0m plain")

	require.Equal(t, "red plain", plain)
	require.Len(t, marks, 2)
	assert.Equal(t, Mark{Offset: 0, Seq: "\x1b[31m"}, marks[0])
	assert.Equal(t, Mark{Offset: 3, Seq: "\x1b[0m"}, marks[1])
}

func TestStripRestoreRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "no escapes", input: "plain text"},
		{name: "empty", input: ""},
		{name: "sgr color pair", input: "\x1b[38;2;255;0;0mred\x1b[0m"},
		{name: "sequence at end", input: "tail\x1b[2K"},
		{name: "back to back sequences", input: "\x1b[1m\x1b[4mbold underline\x1b[0m"},
		{name: "osc title with bel", input: "\x1b]0;window title\x07body"},
		{name: "osc hyperlink with st", input: "\x1b]8;;https://example.com\x1b\\link\x1b]8;;\x1b\\"},
		{name: "dcs payload", input: "before\x1bPq#0;2;0;0;0\x1b\\after"},
		{name: "two byte escape", input: "save\x1b7restore\x1b8"},
		{name: "unterminated csi", input: "cut off \x1b[38;2;1"},
		{name: "lone esc at end", input: "dangling\x1b"},
		{name: "emoji around escapes", input: "\x1b[32m✅ done\x1b[0m 🎉"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			plain, marks := Strip(tt.input)
			assert.NotContains(t, plain, "\x1b")
			assert.Equal(t, tt.input, Restore(plain, marks))
		})
	}
}

func TestStripMalformedCSIKeepsStrayByte(t *testing.T) {
	t.Parallel()

	// The ESC byte interrupting the first CSI starts a second sequence.
	input := "\x1b[38;\x1b[0mtext"
	plain, marks := Strip(input)

	assert.Equal(t, "text", plain)
	require.Len(t, marks, 2)
	assert.Equal(t, input, Restore(plain, marks))
}

func TestSeqLen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "not an escape", input: "abc", want: 0},
		{name: "empty", input: "", want: 0},
		{name: "sgr", input: "\x1b[31mrest", want: 5},
		{name: "csi with intermediates", input: "\x1b[?25lrest", want: 6},
		{name: "osc bel terminated", input: "\x1b]0;hi\x07rest", want: 7},
		{name: "two byte", input: "\x1b7rest", want: 2},
		{name: "lone esc", input: "\x1b", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, SeqLen(tt.input))
		})
	}
}

func TestHasEscapes(t *testing.T) {
	t.Parallel()

	assert.False(t, HasEscapes("plain"))
	assert.True(t, HasEscapes("\x1b[0m"))
	assert.True(t, HasEscapes("mid\x1bdle"))
}

func TestIsSGR(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSGR("\x1b[0m"))
	assert.True(t, IsSGR("\x1b[38;2;10;20;30m"))
	assert.False(t, IsSGR("\x1b[2K"))
	assert.False(t, IsSGR("\x1b]0;title\x07"))
	assert.False(t, IsSGR("plain"))
}

func TestStripStringDropsMarks(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "styled", StripString("\x1b[1mstyled\x1b[0m"))
}
