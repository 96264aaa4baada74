// Package ansi recognizes ANSI escape sequences in strings and supports
// removing them without losing the ability to put them back.
package ansi

import "strings"

const (
	escByte = 0x1b
	belByte = 0x07
)

// Reset clears all graphic attributes.
const Reset = "\x1b[0m"

// Mark records a single escape sequence removed by Strip, anchored to
// the byte offset in the stripped string where it originally sat.
type Mark struct {
	Offset int
	Seq    string
}

// HasEscapes reports whether s contains at least one ESC byte.
func HasEscapes(s string) bool {
	return strings.IndexByte(s, escByte) >= 0
}

// SeqLen returns the byte length of the escape sequence starting at
// s[0], or 0 when s does not start with one. A sequence cut off by the
// end of the string counts through to the end, so scanning never stalls
// on a dangling prefix.
func SeqLen(s string) int {
	if len(s) == 0 || s[0] != escByte {
		return 0
	}
	if len(s) == 1 {
		return 1
	}
	switch s[1] {
	case '[':
		// CSI: parameter and intermediate bytes, then one final byte.
		for i := 2; i < len(s); i++ {
			b := s[i]
			if b >= 0x40 && b <= 0x7e {
				return i + 1
			}
			if b < 0x20 || b > 0x3f {
				// Malformed; the sequence ends before the stray byte.
				return i
			}
		}
		return len(s)
	case ']':
		// OSC: terminated by BEL or ST.
		for i := 2; i < len(s); i++ {
			if s[i] == belByte {
				return i + 1
			}
			if s[i] == escByte && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return len(s)
	case 'P', 'X', '^', '_':
		// DCS, SOS, PM and APC: terminated by ST.
		for i := 2; i < len(s); i++ {
			if s[i] == escByte && i+1 < len(s) && s[i+1] == '\\' {
				return i + 2
			}
		}
		return len(s)
	default:
		// Two-byte escape such as ESC 7.
		return 2
	}
}

// Strip removes every escape sequence from s. It returns the remaining
// plain text together with the removed sequences, each anchored at the
// byte offset in the plain text where it was cut out. Restore is the
// exact inverse.
func Strip(s string) (string, []Mark) {
	if !HasEscapes(s) {
		return s, nil
	}
	var (
		plain strings.Builder
		marks []Mark
	)
	plain.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == escByte {
			n := SeqLen(s[i:])
			marks = append(marks, Mark{Offset: plain.Len(), Seq: s[i : i+n]})
			i += n
			continue
		}
		plain.WriteByte(s[i])
		i++
	}
	return plain.String(), marks
}

// StripString is Strip for callers that only need the plain text.
func StripString(s string) string {
	plain, _ := Strip(s)
	return plain
}

// Restore splices the sequences recorded by Strip back into plain at
// their anchored offsets, reproducing the original string byte for
// byte. Marks must be ordered by offset, as Strip emits them.
func Restore(plain string, marks []Mark) string {
	if len(marks) == 0 {
		return plain
	}
	total := len(plain)
	for _, m := range marks {
		total += len(m.Seq)
	}
	var out strings.Builder
	out.Grow(total)
	prev := 0
	for _, m := range marks {
		off := m.Offset
		if off < prev {
			off = prev
		}
		if off > len(plain) {
			off = len(plain)
		}
		out.WriteString(plain[prev:off])
		out.WriteString(m.Seq)
		prev = off
	}
	out.WriteString(plain[prev:])
	return out.String()
}

// IsSGR reports whether seq is a Select Graphic Rendition sequence, the
// kind that changes colors and text attributes.
func IsSGR(seq string) bool {
	return len(seq) >= 3 && seq[0] == escByte && seq[1] == '[' && seq[len(seq)-1] == 'm'
}
