package color

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearest256(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input RGB
		want  uint8
	}{
		{name: "pure red hits cube corner", input: RGB{R: 255}, want: 196},
		{name: "pure white hits cube corner", input: RGB{R: 255, G: 255, B: 255}, want: 231},
		{name: "near black prefers gray ramp", input: RGB{R: 8, G: 8, B: 8}, want: 232},
		{name: "mid gray hits ramp exactly", input: RGB{R: 128, G: 128, B: 128}, want: 244},
		{name: "cube level round trip", input: RGB{R: 95, G: 135, B: 175}, want: 67},
		{name: "slightly off cube snaps", input: RGB{R: 93, G: 137, B: 174}, want: 67},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Nearest256(tt.input))
		})
	}
}

func TestNearest256NeverPicksBaseEntries(t *testing.T) {
	t.Parallel()

	// The base palette varies per terminal theme, so quantization must
	// stay inside the cube and ramp.
	samples := []RGB{
		{}, {R: 255}, {G: 255}, {B: 255},
		{R: 128, G: 128, B: 128}, {R: 1, G: 2, B: 3},
		{R: 250, G: 128, B: 114}, {R: 64, G: 224, B: 208},
	}
	for _, c := range samples {
		assert.GreaterOrEqual(t, Nearest256(c), uint8(16), "color %v", c)
	}
}

func TestNearest16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input RGB
		want  uint8
	}{
		{name: "black", input: RGB{}, want: 0},
		{name: "bright red", input: RGB{R: 255}, want: 9},
		{name: "silver", input: RGB{R: 0xc0, G: 0xc0, B: 0xc0}, want: 7},
		{name: "navy leans dark blue", input: RGB{B: 0x80}, want: 4},
		{name: "white", input: RGB{R: 255, G: 255, B: 255}, want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Nearest16(tt.input))
		})
	}
}

func TestFold16(t *testing.T) {
	t.Parallel()

	// Cube corner 196 is pure red, which folds onto bright red.
	assert.Equal(t, uint8(9), Fold16(196))
	// Ramp entry 232 is near black.
	assert.Equal(t, uint8(0), Fold16(232))
	// Cube corner 231 is pure white.
	assert.Equal(t, uint8(15), Fold16(231))
}

func TestPaletteColorInvertsCubeAndRamp(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RGB{R: 255}, PaletteColor(196))
	assert.Equal(t, RGB{R: 95, G: 135, B: 175}, PaletteColor(67))
	assert.Equal(t, RGB{R: 128, G: 128, B: 128}, PaletteColor(244))
	assert.Equal(t, RGB{R: 0x80, G: 0x80, B: 0x80}, PaletteColor(8))

	// Every cube and ramp index survives the round trip.
	for idx := 16; idx <= 255; idx++ {
		assert.Equal(t, uint8(idx), Nearest256(PaletteColor(uint8(idx))), "index %d", idx)
	}
}
