package ansi

import (
	"strings"
	"unicode/utf8"
)

const (
	escByte = 0x1b
	belByte = 0x07
)

// Strip removes every well-formed escape sequence from s. Two forms are
// recognized, scanned byte by byte against their grammar:
//
//	CSI: ESC '[' , parameter bytes 0x30-0x3F, intermediate bytes
//	     0x20-0x2F, one final byte 0x40-0x7E
//	OSC: ESC ']' , arbitrary payload, terminated by BEL or by ST (ESC '\')
//
// Sequences that do not complete (a dangling ESC, a CSI missing its
// final byte, an unterminated OSC) are left in place rather than guessed
// at, so malformed input stays visible to callers measuring it.
func Strip(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == escByte {
			if n := sequenceLen(s[i:]); n > 0 {
				i += n
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// VisibleLength reports how many code points s occupies on screen once
// escape sequences are removed.
func VisibleLength(s string) int {
	return utf8.RuneCountInString(Strip(s))
}

// SplitCells partitions styled text into cell-sized strings: each element
// carries exactly one visible code point plus any escape sequences that
// immediately preceded it. Sequences after the last visible code point
// are appended to the final cell so trailing style resets are not lost.
// Text that contains no visible code points comes back as a single cell
// (or nil when s is empty).
func SplitCells(s string) []string {
	var cells []string
	var pending strings.Builder
	for i := 0; i < len(s); {
		if s[i] == escByte {
			if n := sequenceLen(s[i:]); n > 0 {
				pending.WriteString(s[i : i+n])
				i += n
				continue
			}
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		pending.WriteString(s[i : i+size])
		cells = append(cells, pending.String())
		pending.Reset()
		i += size
	}
	if pending.Len() > 0 {
		if len(cells) == 0 {
			return []string{pending.String()}
		}
		cells[len(cells)-1] += pending.String()
	}
	return cells
}

// sequenceLen returns the byte length of the escape sequence at the start
// of s, or 0 when s does not begin with a complete CSI or OSC sequence.
func sequenceLen(s string) int {
	if len(s) < 2 || s[0] != escByte {
		return 0
	}
	switch s[1] {
	case '[':
		return csiLen(s)
	case ']':
		return oscLen(s)
	}
	return 0
}

// csiLen matches ESC '[' parameter* intermediate* final against the start
// of s. Parameter bytes appearing after an intermediate byte make the
// sequence malformed, and the match fails.
func csiLen(s string) int {
	i := 2
	for i < len(s) && s[i] >= 0x30 && s[i] <= 0x3f {
		i++
	}
	for i < len(s) && s[i] >= 0x20 && s[i] <= 0x2f {
		i++
	}
	if i < len(s) && s[i] >= 0x40 && s[i] <= 0x7e {
		return i + 1
	}
	return 0
}

// oscLen matches ESC ']' payload (BEL | ESC '\') against the start of s.
func oscLen(s string) int {
	for i := 2; i < len(s); i++ {
		switch {
		case s[i] == belByte:
			return i + 1
		case s[i] == escByte && i+1 < len(s) && s[i+1] == '\\':
			return i + 2
		}
	}
	return 0
}
