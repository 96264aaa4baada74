// Package termcaps detects what the attached terminal can do. The
// result is plain data; rendering decisions stay with the serializers.
package termcaps

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Depth is the color resolution a terminal supports.
type Depth int

const (
	Depth8 Depth = iota
	Depth256
	DepthTrueColor
)

// String implements fmt.Stringer.
func (d Depth) String() string {
	switch d {
	case Depth256:
		return "256-color"
	case DepthTrueColor:
		return "truecolor"
	default:
		return "16-color"
	}
}

// Profile describes the capabilities of an output terminal.
type Profile struct {
	ANSI      bool
	Depth     Depth
	EmojiSafe bool
	Width     int
	Height    int
}

// Detect probes the environment and stdout. Color support follows
// termenv's environment detection, which honors NO_COLOR and
// CLICOLOR_FORCE; size falls back to 80x24 when stdout is not a
// terminal.
func Detect() Profile {
	p := Profile{Width: 80, Height: 24}

	fd := int(os.Stdout.Fd())
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		p.Width, p.Height = w, h
	}

	switch termenv.EnvColorProfile() {
	case termenv.TrueColor:
		p.ANSI = true
		p.Depth = DepthTrueColor
	case termenv.ANSI256:
		p.ANSI = true
		p.Depth = Depth256
	case termenv.ANSI:
		p.ANSI = true
		p.Depth = Depth8
	}
	if p.ANSI && !term.IsTerminal(fd) && !termenv.EnvNoColor() {
		// Piped output keeps color only when forced via CLICOLOR_FORCE.
		if os.Getenv("CLICOLOR_FORCE") == "" {
			p.ANSI = false
		}
	}

	p.EmojiSafe = EmojiSafe(os.Getenv("TERM"), os.Getenv("LANG"), os.Getenv("LC_ALL"))
	return p
}

// TrueColor returns the profile serializers assume when no terminal is
// involved, such as rendering for tests or HTML output.
func TrueColor() Profile {
	return Profile{
		ANSI:      true,
		Depth:     DepthTrueColor,
		EmojiSafe: true,
		Width:     80,
		Height:    24,
	}
}

// EmojiSafe guesses whether the terminal renders emoji at their
// measured double width. Console terminals and non-UTF-8 locales are
// the known offenders.
func EmojiSafe(termName, lang, lcAll string) bool {
	switch termName {
	case "linux", "dumb", "vt100", "vt220":
		return false
	}
	locale := lcAll
	if locale == "" {
		locale = lang
	}
	if locale == "" {
		// No locale at all usually means a stripped container
		// environment; emoji tend to work there.
		return true
	}
	locale = strings.ToLower(locale)
	return strings.Contains(locale, "utf-8") || strings.Contains(locale, "utf8")
}
