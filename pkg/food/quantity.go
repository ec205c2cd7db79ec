package food

import (
	"strconv"
	"strings"
	"unicode"
)

// parseLeadingInt reads the integer a quantity text such as "6 porsiyon" starts with.
// Leading whitespace and a sign are accepted; ok is false when no digit follows.
func parseLeadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

func portionText(n int) string {
	return strconv.Itoa(n) + " porsiyon"
}
