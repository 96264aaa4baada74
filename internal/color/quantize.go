package color

// cubeLevels holds the channel values of the xterm 6x6x6 color cube.
var cubeLevels = [6]uint8{0, 95, 135, 175, 215, 255}

// ansi16 holds the RGB values of the 16 base palette entries in index
// order.
var ansi16 = [16]RGB{
	{R: 0x00, G: 0x00, B: 0x00},
	{R: 0x80, G: 0x00, B: 0x00},
	{R: 0x00, G: 0x80, B: 0x00},
	{R: 0x80, G: 0x80, B: 0x00},
	{R: 0x00, G: 0x00, B: 0x80},
	{R: 0x80, G: 0x00, B: 0x80},
	{R: 0x00, G: 0x80, B: 0x80},
	{R: 0xc0, G: 0xc0, B: 0xc0},
	{R: 0x80, G: 0x80, B: 0x80},
	{R: 0xff, G: 0x00, B: 0x00},
	{R: 0x00, G: 0xff, B: 0x00},
	{R: 0xff, G: 0xff, B: 0x00},
	{R: 0x00, G: 0x00, B: 0xff},
	{R: 0xff, G: 0x00, B: 0xff},
	{R: 0x00, G: 0xff, B: 0xff},
	{R: 0xff, G: 0xff, B: 0xff},
}

// Nearest256 returns the xterm 256-palette index closest to c by
// Euclidean distance. Candidates come from the 6x6x6 cube and the
// 24-step grayscale ramp; the 16 base entries stay out because their
// values vary between terminal themes.
func Nearest256(c RGB) uint8 {
	qr := nearestCubeIndex(c.R)
	qg := nearestCubeIndex(c.G)
	qb := nearestCubeIndex(c.B)
	cube := RGB{R: cubeLevels[qr], G: cubeLevels[qg], B: cubeLevels[qb]}

	gi := grayIndex(c)
	gv := uint8(8 + 10*gi)
	gray := RGB{R: gv, G: gv, B: gv}

	if distSq(c, gray) < distSq(c, cube) {
		return uint8(232 + gi)
	}
	return uint8(16 + 36*qr + 6*qg + qb)
}

// Fold16 maps a 256-palette index down onto the base 16 palette.
// Serializers targeting 16-color terminals quantize to 256 first and
// fold the result.
func Fold16(idx uint8) uint8 {
	return Nearest16(PaletteColor(idx))
}

// Nearest16 returns the base-16 palette index closest to c by Euclidean
// distance, for terminals that support nothing richer.
func Nearest16(c RGB) uint8 {
	best := 0
	bestDist := distSq(c, ansi16[0])
	for i := 1; i < len(ansi16); i++ {
		if d := distSq(c, ansi16[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return uint8(best)
}

// PaletteColor returns the RGB value behind a 256-palette index, the
// inverse of Nearest256 for cube and grayscale entries. Base palette
// indexes resolve to their conventional values.
func PaletteColor(idx uint8) RGB {
	switch {
	case idx < 16:
		return ansi16[idx]
	case idx < 232:
		n := int(idx) - 16
		return RGB{
			R: cubeLevels[n/36],
			G: cubeLevels[n/6%6],
			B: cubeLevels[n%6],
		}
	default:
		v := uint8(8 + 10*(int(idx)-232))
		return RGB{R: v, G: v, B: v}
	}
}

func nearestCubeIndex(v uint8) int {
	best := 0
	bestDist := absDiff(v, cubeLevels[0])
	for i := 1; i < len(cubeLevels); i++ {
		if d := absDiff(v, cubeLevels[i]); d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

func grayIndex(c RGB) int {
	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	gi := (avg - 3) / 10
	if gi < 0 {
		return 0
	}
	if gi > 23 {
		return 23
	}
	return gi
}

func distSq(a, b RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}
