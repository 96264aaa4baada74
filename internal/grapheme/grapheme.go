// Package grapheme measures and manipulates strings by the terminal
// columns they occupy. Measurement walks extended grapheme clusters, so
// emoji sequences, combining marks and wide CJK text all count the way
// a modern terminal renders them. Escape sequences never contribute to
// width.
package grapheme

import (
	"sync"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/alexisbeaulieu97/prismbox/internal/ansi"
)

const (
	maxCacheableLen = 256
	widthCacheLimit = 4096
)

// Ambiguous East Asian width resolves narrow regardless of locale so
// layouts measure the same on every machine.
var widthCond = &runewidth.Condition{EastAsianWidth: false}

// Width returns the number of terminal columns s occupies. Escape
// sequences are stripped before measuring.
func Width(s string) int {
	if s == "" {
		return 0
	}
	if ansi.HasEscapes(s) {
		s = ansi.StripString(s)
	}
	if w, ok := asciiWidth(s); ok {
		return w
	}
	cacheable := len(s) <= maxCacheableLen
	if cacheable {
		if w, ok := widthCache.get(s); ok {
			return w
		}
	}
	total := 0
	rest := s
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		total += ClusterWidth(cluster)
	}
	if cacheable {
		widthCache.put(s, total)
	}
	return total
}

// Measure returns the column width of s along with an advisory flag
// set when any cluster's width depends on the rendering terminal,
// either ambiguous East Asian characters or emoji presentation on an
// unsafe base. The width itself always uses the narrow resolution.
func Measure(s string) (int, bool) {
	if ansi.HasEscapes(s) {
		s = ansi.StripString(s)
	}
	if w, ok := asciiWidth(s); ok {
		return w, false
	}
	var (
		total     int
		ambiguous bool
	)
	rest := s
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		_, w, amb := classify(cluster)
		total += w
		ambiguous = ambiguous || amb
	}
	return total, ambiguous
}

// ContainsAmbiguous reports whether rendering s may differ between
// terminals. Callers that target CJK locales can use this to warn.
func ContainsAmbiguous(s string) bool {
	_, ambiguous := Measure(s)
	return ambiguous
}

// ClusterWidth returns the column width of a single grapheme cluster.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	if len(cluster) == 1 {
		b := cluster[0]
		if b >= 0x20 && b != 0x7f {
			return 1
		}
		return 0
	}
	_, w, _ := classify(cluster)
	return w
}

// Split segments s into classified clusters. Concatenating the Text
// fields reproduces s exactly. Escape sequences are not understood
// here; strip them first.
func Split(s string) []Cluster {
	if s == "" {
		return nil
	}
	var out []Cluster
	rest := s
	state := -1
	for len(rest) > 0 {
		var text string
		text, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cat, w, amb := classify(text)
		out = append(out, Cluster{
			Text:      text,
			Runes:     []rune(text),
			Category:  cat,
			Width:     w,
			Ambiguous: amb,
		})
	}
	return out
}

// Clusters splits s into its extended grapheme clusters. Joining the
// result reproduces s exactly.
func Clusters(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	rest := s
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		out = append(out, cluster)
	}
	return out
}

// asciiWidth measures pure ASCII strings without segmenting. The bool
// result is false when s needs the full cluster walk.
func asciiWidth(s string) (int, bool) {
	w := 0
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= utf8.RuneSelf {
			return 0, false
		}
		if b >= 0x20 && b != 0x7f {
			w++
		}
	}
	return w, true
}

type measureCache struct {
	mu      sync.RWMutex
	entries map[string]int
}

var widthCache = &measureCache{entries: make(map[string]int, 64)}

func (c *measureCache) get(s string) (int, bool) {
	c.mu.RLock()
	w, ok := c.entries[s]
	c.mu.RUnlock()
	return w, ok
}

func (c *measureCache) put(s string, w int) {
	c.mu.Lock()
	if len(c.entries) >= widthCacheLimit {
		c.entries = make(map[string]int, 64)
	}
	c.entries[s] = w
	c.mu.Unlock()
}

// ResetCache drops all memoized measurements. Tests call it to keep
// runs independent.
func ResetCache() {
	widthCache.mu.Lock()
	widthCache.entries = make(map[string]int, 64)
	widthCache.mu.Unlock()
}
