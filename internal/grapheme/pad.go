package grapheme

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/alexisbeaulieu97/prismbox/internal/ansi"
	"github.com/alexisbeaulieu97/prismbox/pkg/errors"
)

// Align selects which side text sits on inside padded space.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var alignNames = map[Align]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// String implements fmt.Stringer.
func (a Align) String() string {
	if name, ok := alignNames[a]; ok {
		return name
	}
	return "left"
}

// ParseAlign resolves an alignment name. The empty string means left.
func ParseAlign(name string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, errors.NewValidationError("align", fmt.Sprintf("unknown alignment %q (valid: left, center, right)", name), nil)
}

// Pad grows s to width columns with plain spaces on the side the
// alignment leaves open. Strings at or past width come back unchanged.
func Pad(s string, width int, align Align) string {
	switch align {
	case AlignRight:
		return PadLeft(s, width)
	case AlignCenter:
		return Center(s, width)
	default:
		return PadRight(s, width)
	}
}

// PadRight appends spaces until s occupies at least width columns.
func PadRight(s string, width int) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// PadLeft prepends spaces until s occupies at least width columns.
func PadLeft(s string, width int) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	return strings.Repeat(" ", gap) + s
}

// Center surrounds s with spaces until it occupies at least width
// columns. An odd leftover column goes to the right side.
func Center(s string, width int) string {
	gap := width - Width(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// Truncate shortens s to at most maxWidth columns, appending tail in
// place of the removed text. Escape sequences anchored in the kept
// prefix survive, and open styling is closed before the tail. A wide
// cluster that straddles the limit is dropped whole rather than split.
func Truncate(s string, maxWidth int, tail string) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	budget := maxWidth - Width(tail)
	if budget < 0 {
		budget = 0
	}

	plain, marks := ansi.Strip(s)
	cut := 0
	used := 0
	rest := plain
	state := -1
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := ClusterWidth(cluster)
		if used+w > budget {
			break
		}
		used += w
		cut += len(cluster)
	}

	var (
		kept   []ansi.Mark
		styled bool
	)
	for _, m := range marks {
		// A reset sitting exactly on the boundary still belongs to the
		// kept text.
		if m.Offset > cut || (m.Offset == cut && m.Seq != ansi.Reset) {
			break
		}
		kept = append(kept, m)
		if ansi.IsSGR(m.Seq) {
			styled = m.Seq != ansi.Reset
		}
	}
	out := ansi.Restore(plain[:cut], kept)
	if styled {
		out += ansi.Reset
	}
	return out + tail
}
