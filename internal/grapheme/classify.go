package grapheme

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Category labels the kind of grapheme cluster the classifier saw. The
// zero value Plain covers everything without emoji mechanics.
type Category int

const (
	Plain Category = iota
	BasicEmoji
	ModifiedEmoji
	ZWJSequence
	Keycap
	Flag
)

var categoryNames = map[Category]string{
	Plain:         "plain",
	BasicEmoji:    "emoji",
	ModifiedEmoji: "modified-emoji",
	ZWJSequence:   "zwj-sequence",
	Keycap:        "keycap",
	Flag:          "flag",
}

// String implements fmt.Stringer.
func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// Cluster is one extended grapheme cluster together with its measured
// width and classification.
type Cluster struct {
	Text      string
	Runes     []rune
	Category  Category
	Width     int
	Ambiguous bool
}

const (
	runeVS15          = 0xfe0e
	runeVS16          = 0xfe0f
	runeZWJ           = 0x200d
	runeKeycap        = 0x20e3
	runeRegionalFirst = 0x1f1e6
	runeRegionalLast  = 0x1f1ff
	runeModifierFirst = 0x1f3fb
	runeModifierLast  = 0x1f3ff
)

// clusterOverrides pins widths for clusters the general rules cannot
// classify, mostly joiners and selectors stranded without a base.
var clusterOverrides = map[string]int{
	"‍": 0,
	"︎": 0,
	"️": 0,
	"⃣": 0,
}

// emojiPresentation lists the codepoint ranges where a VS16 selector
// reliably switches terminals to the two-column emoji form. A VS16 on
// a base outside these ranges renders inconsistently across emulators.
var emojiPresentation = [][2]rune{
	{0x2139, 0x2139},
	{0x2194, 0x21aa},
	{0x231a, 0x231b},
	{0x2328, 0x2328},
	{0x23cf, 0x23fa},
	{0x24c2, 0x24c2},
	{0x25aa, 0x25fe},
	{0x2600, 0x27bf},
	{0x2934, 0x2935},
	{0x2b05, 0x2b55},
	{0x3030, 0x3030},
	{0x303d, 0x303d},
	{0x3297, 0x3297},
	{0x3299, 0x3299},
	{0x1f000, 0x1ffff},
}

func inEmojiPresentation(r rune) bool {
	for _, rg := range emojiPresentation {
		if r >= rg[0] && r <= rg[1] {
			return true
		}
	}
	return false
}

// classify resolves a cluster's category, column width and ambiguity in
// one pass. The sequence rules run before the general width tables so
// multi-rune emoji collapse to the two columns they render as.
func classify(text string) (Category, int, bool) {
	if w, ok := clusterOverrides[text]; ok {
		return Plain, w, false
	}

	var (
		hasZWJ      bool
		hasVS16     bool
		hasVS15     bool
		hasKeycap   bool
		hasModifier bool
		regional    int
		count       int
		ambiguous   bool
	)
	base, _ := utf8.DecodeRuneInString(text)
	for _, r := range text {
		count++
		switch {
		case r == runeZWJ:
			hasZWJ = true
		case r == runeVS16:
			hasVS16 = true
		case r == runeVS15:
			hasVS15 = true
		case r == runeKeycap:
			hasKeycap = true
		case r >= runeModifierFirst && r <= runeModifierLast:
			hasModifier = true
		case r >= runeRegionalFirst && r <= runeRegionalLast:
			regional++
		}
		if runewidth.IsAmbiguousWidth(r) {
			ambiguous = true
		}
	}

	switch {
	case regional == 2 && count == 2:
		// A pair of regional indicators renders as one flag.
		return Flag, 2, ambiguous
	case hasZWJ:
		// Joined sequences collapse to a single emoji.
		return ZWJSequence, 2, ambiguous
	case hasKeycap:
		return Keycap, 2, ambiguous
	case hasModifier:
		return ModifiedEmoji, 2, ambiguous
	case hasVS16:
		if inEmojiPresentation(base) {
			return BasicEmoji, 2, ambiguous
		}
		// Emoji presentation requested on an unsafe base: keep the
		// narrow width and flag the measurement instead.
		return Plain, widthCond.StringWidth(text), true
	case hasVS15:
		// Text presentation forces the narrow form.
		return Plain, 1, ambiguous
	}

	w := widthCond.StringWidth(text)
	if w == 2 && inEmojiPresentation(base) {
		return BasicEmoji, 2, ambiguous
	}
	return Plain, w, ambiguous
}
