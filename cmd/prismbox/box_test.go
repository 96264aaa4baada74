package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetErr(buf)
	if stdin != "" {
		root.SetIn(strings.NewReader(stdin))
	}
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func TestBoxDefaultTheme(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "", "box", "-o", "plain", "hello")

	require.NoError(t, err)
	assert.Equal(t, "╭───────╮\n│ hello │\n╰───────╯\n", out)
}

func TestBoxFlagOverrides(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "", "box", "-o", "plain", "--border", "ascii", "--padding", "0", "hi")

	require.NoError(t, err)
	assert.Equal(t, "+--+\n|hi|\n+--+\n", out)
}

func TestBoxTitle(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "", "box", "-o", "plain", "--border", "normal", "--padding", "0", "--title", "t", "x")

	require.NoError(t, err)
	assert.Equal(t, "┌─┤ t ├─┐\n│x      │\n└───────┘\n", out)
}

func TestBoxReadsStdin(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "a\nb\n", "box", "-o", "plain", "--border", "ascii", "--padding", "0")

	require.NoError(t, err)
	assert.Equal(t, "+-+\n|a|\n|b|\n+-+\n", out)
}

func TestBoxRainbowEscapes(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "", "box", "-o", "ansi", "--rainbow", "x")

	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[38;2;255;0;0m")
	assert.Contains(t, out, "\x1b[38;2;148;0;211m")
}

func TestBoxHTMLOutput(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "", "box", "-o", "html", "--border-color", "red", "x")

	require.NoError(t, err)
	assert.Contains(t, out, "<pre>")
	assert.Contains(t, out, "#ff0000")
}

func TestBoxThemeFile(t *testing.T) {
	t.Parallel()

	theme := `version: "1.0"
name: tester
frame:
  border: double
  padding: 0
`
	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte(theme), 0o600))

	out, err := runCommand(t, "", "box", "-o", "plain", "--theme", path, "x")

	require.NoError(t, err)
	assert.Equal(t, "╔═╗\n║x║\n╚═╝\n", out)
}

func TestBoxErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{
			name:    "unknown border",
			args:    []string{"box", "-o", "plain", "--border", "wavy", "x"},
			message: "unknown border style",
		},
		{
			name:    "rainbow conflicts with stops",
			args:    []string{"box", "-o", "plain", "--rainbow", "--gradient", "red,blue", "x"},
			message: "mutually exclusive",
		},
		{
			name:    "bad color",
			args:    []string{"box", "-o", "plain", "--border-color", "nope", "x"},
			message: "invalid color",
		},
		{
			name:    "bad output mode",
			args:    []string{"box", "-o", "sideways", "x"},
			message: "unknown output mode",
		},
		{
			name:    "impossible width",
			args:    []string{"box", "-o", "plain", "--width", "2", "--padding", "0", "x"},
			message: "invalid dimensions",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := runCommand(t, "", tt.args...)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
