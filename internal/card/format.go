package card

import (
	"strings"
	"unicode"
)

// FormatCardNumber strips every non-digit from raw and regroups the digits
// into space-separated chunks of four. A partial final chunk is kept.
//
// Example: "4242-4242 42" → "4242 4242 42"
func FormatCardNumber(raw string) string {
	digits := DigitsOnly(raw)
	if digits == "" {
		return ""
	}
	return groupBy(digits, 4)
}

// DigitsOnly removes every character that is not an ASCII digit.
func DigitsOnly(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeHolder keeps ASCII letters, whitespace, apostrophes, dots and
// hyphens, then collapses each whitespace run to a single space.
// Leading and trailing spaces survive (collapsed), so typing "Jane " keeps
// the separator needed for the next word.
func SanitizeHolder(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	prevSpace := false
	for _, r := range raw {
		switch {
		case unicode.IsSpace(r):
			if !prevSpace {
				b.WriteByte(' ')
			}
			prevSpace = true
			continue
		case isASCIILetter(r), r == '\'', r == '.', r == '-':
			b.WriteRune(r)
		default:
			// Dropped characters do not end a whitespace run.
			continue
		}
		prevSpace = false
	}
	return b.String()
}

// RemapCursor translates a caret offset in raw into the equivalent offset in
// formatted, where formatted is raw passed through FormatCardNumber or
// DigitsOnly. The caret stays after the same number of digits.
func RemapCursor(raw string, cursor int, formatted string) int {
	rawRunes := []rune(raw)
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(rawRunes) {
		cursor = len(rawRunes)
	}

	digitsBefore := 0
	for _, r := range rawRunes[:cursor] {
		if r >= '0' && r <= '9' {
			digitsBefore++
		}
	}

	if digitsBefore == 0 {
		return 0
	}

	seen := 0
	for i, r := range []rune(formatted) {
		if r >= '0' && r <= '9' {
			seen++
			if seen == digitsBefore {
				return i + 1
			}
		}
	}
	return len([]rune(formatted))
}

func groupBy(s string, size int) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(runes) + len(runes)/size)
	for i, r := range runes {
		if i > 0 && i%size == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
