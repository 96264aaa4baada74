package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGalleryRendersAllPresets(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "", "gallery", "-o", "plain", "--parallel", "2")

	require.NoError(t, err)
	for _, name := range []string{"normal", "rounded", "double", "ascii", "rainbow", "border-fade", "content-wash"} {
		assert.Contains(t, out, name+"\n")
	}
	assert.Contains(t, out, "The quick brown fox")
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "┏")
}

func TestGalleryCustomSample(t *testing.T) {
	t.Parallel()

	out, err := runCommand(t, "", "gallery", "-o", "plain", "custom sample line")

	require.NoError(t, err)
	assert.Contains(t, out, "custom sample line")
	assert.NotContains(t, out, "The quick brown fox")
}
