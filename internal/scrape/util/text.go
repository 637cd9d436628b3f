package util

import "strings"

// CleanText collapses whitespace (including non-breaking spaces, which the
// tracker table is full of) to single spaces and trims the result.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}
