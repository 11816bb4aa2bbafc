package template

import "strings"

// FindMatchingClose returns the offset of the close marker that balances an
// open marker already consumed just before start. Nested open/close pairs of
// the same kind between start and the match are skipped. It returns -1 when
// the nesting never returns to zero.
func FindMatchingClose(s, open, close string, start int) int {
	if start < 0 {
		start = 0
	}
	depth := 1
	pos := start
	for pos < len(s) && depth > 0 {
		nextClose := strings.Index(s[pos:], close)
		if nextClose < 0 {
			return -1
		}
		nextClose += pos

		nextOpen := strings.Index(s[pos:], open)
		if nextOpen >= 0 && pos+nextOpen < nextClose {
			depth++
			pos += nextOpen + len(open)
			continue
		}

		depth--
		if depth == 0 {
			return nextClose
		}
		pos = nextClose + len(close)
	}
	return -1
}

// splitElse splits an if body at its top level else marker. Else markers
// belonging to nested if blocks are ignored.
func splitElse(body string) (whenTrue, whenFalse string, found bool) {
	depth := 0
	for i := 0; i < len(body); i++ {
		rest := body[i:]
		switch {
		case strings.HasPrefix(rest, ifOpen):
			depth++
		case strings.HasPrefix(rest, ifClose):
			depth--
		case depth == 0 && strings.HasPrefix(rest, elseMarker):
			return body[:i], body[i+len(elseMarker):], true
		}
	}
	return body, "", false
}
