// Package dates normalizes the tracker's "15 Sep 24" cell format into ISO
// calendar dates.
package dates

import (
	"strings"
	"time"
)

const (
	sourceLayout = "2 Jan 06"
	isoLayout    = "2006-01-02"
)

// Normalize parses raw text in "day abbreviated-month two-digit-year" form
// and returns the ISO date ("2024-09-15") with ok=true. Empty, whitespace-only
// or unparseable input returns ("", false) — absence is not an error; the
// tracker leaves date cells blank all the time.
func Normalize(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	t, err := time.Parse(sourceLayout, raw)
	if err != nil {
		return "", false
	}
	return t.Format(isoLayout), true
}
