package main

import (
	"strings"
	"unicode"
)

// sanitizeForTerminal flattens whitespace and drops control characters so
// source text cannot move the cursor or inject escape sequences.
func sanitizeForTerminal(input string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, input)
}

// excerpt shortens s to at most limit runes, marking the cut.
func excerpt(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit]) + "..."
}
