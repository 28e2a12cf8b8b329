package ansi

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrPositionParse indicates a terminal reply that did not contain a
// recognizable cursor position report.
var ErrPositionParse = errors.New("unrecognized cursor position reply")

// ParseCursorReport extracts the first cursor position report, ESC '['
// <rows> ';' <cols> 'R', from a terminal reply. Replies may carry
// unrelated bytes around the report (type-ahead that arrived first, echo
// fragments), so scanning tolerates surrounding noise, but the report
// itself must be complete and well formed. Both numbers are parsed base 10.
func ParseCursorReport(reply []byte) (rows, cols int, err error) {
	s := string(reply)
	for i := 0; i+1 < len(s); i++ {
		if s[i] != escByte || s[i+1] != '[' {
			continue
		}
		if r, c, ok := parseReport(s[i+2:]); ok {
			return r, c, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %q", ErrPositionParse, reply)
}

// parseReport matches <digits> ';' <digits> 'R' at the start of s.
func parseReport(s string) (rows, cols int, ok bool) {
	nr := digitSpan(s)
	if nr == 0 || nr == len(s) || s[nr] != ';' {
		return 0, 0, false
	}
	rest := s[nr+1:]
	nc := digitSpan(rest)
	if nc == 0 || nc == len(rest) || rest[nc] != 'R' {
		return 0, 0, false
	}
	r, err := strconv.Atoi(s[:nr])
	if err != nil {
		return 0, 0, false
	}
	c, err := strconv.Atoi(rest[:nc])
	if err != nil {
		return 0, 0, false
	}
	return r, c, true
}

// digitSpan returns the count of leading ASCII digits in s.
func digitSpan(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
