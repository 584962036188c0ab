package types

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParseUnitPrice coerces raw form text to a unit price. It never fails:
// leading whitespace is skipped and the longest numeric prefix is parsed, so
// "12.5kg" yields 12.5. Empty or non-numeric text, NaN, infinities and
// negative values all become 0.
func ParseUnitPrice(raw string) float64 {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)
	prefix := numericPrefix(s)
	if prefix == "" {
		return 0
	}
	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0
	}
	return v
}

// numericPrefix returns the longest prefix of s of the form
// [+-]digits[.digits][(e|E)[+-]digits].
func numericPrefix(s string) string {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	digits := i - intStart
	if i < len(s) && s[i] == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if digits > 0 || j > i+1 {
			digits += j - i - 1
			i = j
		}
	}
	if digits == 0 {
		return ""
	}
	end := i
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expStart := j
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		if j > expStart {
			end = j
		}
	}
	return s[:end]
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
