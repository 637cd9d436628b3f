package domain

import "time"

const isoDate = "2006-01-02"

// IsOpen reports whether a role's application window contains today.
// Dates are ISO "2006-01-02" strings as stored; "" means absent.
//
// Rules: no open date -> closed; opens after today -> closed; closes before
// today -> closed; otherwise open. A malformed stored date counts as closed.
// Callers supply today so reads are reproducible in tests.
func IsOpen(opens, closes string, today time.Time) bool {
	if opens == "" {
		return false
	}
	o, err := time.Parse(isoDate, opens)
	if err != nil {
		return false
	}
	// Normalize today to a bare calendar date so comparisons ignore the
	// caller's clock time and zone.
	day, _ := time.Parse(isoDate, today.Format(isoDate))
	if o.After(day) {
		return false
	}
	if closes != "" {
		c, err := time.Parse(isoDate, closes)
		if err != nil {
			return false
		}
		if c.Before(day) {
			return false
		}
	}
	return true
}

// Open is a convenience wrapper for a full record.
func (r RoleRecord) Open(today time.Time) bool {
	return IsOpen(r.ApplicationOpens, r.ApplicationCloses, today)
}
