// Package color models terminal colors as RGB triples and provides
// parsing, interpolation and palette quantization on top of them. Every
// color entering the system normalizes to the same representation, so
// "red", "#f00" and "rgb(255,0,0)" are indistinguishable downstream.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/prismbox/pkg/errors"
)

// RGB is a 24-bit color value, the canonical form every spec
// normalizes to.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// FromTriple builds an RGB from raw channel values.
func FromTriple(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

// Hex formats c as a lowercase #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Colorful converts c to the float form go-colorful computes in.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// FromColorful rounds a go-colorful color back to 8-bit channels.
func FromColorful(c colorful.Color) RGB {
	c = c.Clamped()
	return RGB{
		R: uint8(math.Round(c.R * 255.0)),
		G: uint8(math.Round(c.G * 255.0)),
		B: uint8(math.Round(c.B * 255.0)),
	}
}

// Parse resolves a color spec to its RGB value. Accepted forms are CSS
// extended color names ("rebeccapurple"), three and six digit hex
// ("#f00", "#ff0000") and decimal component triples ("rgb(255,0,0)").
// Case and surrounding whitespace never matter. Anything else returns a
// ColorSpecError; specs are never silently defaulted.
func Parse(spec string) (RGB, error) {
	key := strings.ToLower(strings.TrimSpace(spec))
	if key == "" {
		return RGB{}, errors.NewColorSpecError(spec, nil)
	}
	if c, ok := parseCache.get(key); ok {
		return c, nil
	}
	c, err := parse(spec, key)
	if err != nil {
		return RGB{}, err
	}
	parseCache.put(key, c)
	return c, nil
}

// MustParse is Parse for trusted literals; it panics on a bad spec.
func MustParse(spec string) RGB {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

func parse(spec, key string) (RGB, error) {
	if c, ok := names[key]; ok {
		return c, nil
	}
	if strings.HasPrefix(key, "#") {
		return parseHex(spec, key)
	}
	if strings.HasPrefix(key, "rgb(") && strings.HasSuffix(key, ")") {
		return parseRGBFunc(spec, key)
	}
	return RGB{}, errors.NewColorSpecError(spec, nil)
}

func parseHex(spec, key string) (RGB, error) {
	digits := key[1:]
	switch len(digits) {
	case 3:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(digits[i:i+1], 16, 8)
			if err != nil {
				return RGB{}, errors.NewColorSpecError(spec, err)
			}
			// A short digit doubles: #f00 means #ff0000.
			out[i] = uint8(v*16 + v)
		}
		return RGB{R: out[0], G: out[1], B: out[2]}, nil
	case 6:
		var out [3]uint8
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(digits[2*i:2*i+2], 16, 8)
			if err != nil {
				return RGB{}, errors.NewColorSpecError(spec, err)
			}
			out[i] = uint8(v)
		}
		return RGB{R: out[0], G: out[1], B: out[2]}, nil
	default:
		return RGB{}, errors.NewColorSpecError(spec, fmt.Errorf("hex colors take 3 or 6 digits, got %d", len(digits)))
	}
}

func parseRGBFunc(spec, key string) (RGB, error) {
	inner := key[len("rgb(") : len(key)-1]
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return RGB{}, errors.NewColorSpecError(spec, fmt.Errorf("rgb() takes 3 components, got %d", len(parts)))
	}
	var out [3]uint8
	channels := [3]string{"red", "green", "blue"}
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return RGB{}, errors.NewColorSpecError(spec, err)
		}
		if n < 0 || n > 255 {
			return RGB{}, errors.NewColorSpecError(spec, fmt.Errorf("%s channel %d out of range 0-255", channels[i], n))
		}
		out[i] = uint8(n)
	}
	return RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// Lerp interpolates between a and b channel by channel in RGB space,
// rounding to the nearest 8-bit value. The factor t clamps to [0,1];
// identical endpoints return a for every t.
func Lerp(a, b RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: lerpChannel(a.R, b.R, t),
		G: lerpChannel(a.G, b.G, t),
		B: lerpChannel(a.B, b.B, t),
	}
}

// LerpHSV interpolates between a and b in HSV space, taking the shorter
// arc around the hue circle so a blend from 350° to 10° passes through
// red instead of sweeping the whole wheel. The factor t clamps to
// [0,1].
func LerpHSV(a, b RGB, t float64) RGB {
	t = clamp01(t)
	return FromColorful(a.Colorful().BlendHsv(b.Colorful(), t))
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(t float64) float64 {
	switch {
	case t < 0 || math.IsNaN(t):
		return 0
	case t > 1:
		return 1
	}
	return t
}

const parseCacheLimit = 1024

type specCache struct {
	mu      sync.RWMutex
	entries map[string]RGB
}

var parseCache = &specCache{entries: make(map[string]RGB, 32)}

func (c *specCache) get(key string) (RGB, bool) {
	c.mu.RLock()
	v, ok := c.entries[key]
	c.mu.RUnlock()
	return v, ok
}

func (c *specCache) put(key string, v RGB) {
	c.mu.Lock()
	if len(c.entries) >= parseCacheLimit {
		c.entries = make(map[string]RGB, 32)
	}
	c.entries[key] = v
	c.mu.Unlock()
}

// ResetCache drops all memoized parses. Tests call it to keep runs
// independent.
func ResetCache() {
	parseCache.mu.Lock()
	parseCache.entries = make(map[string]RGB, 32)
	parseCache.mu.Unlock()
}
