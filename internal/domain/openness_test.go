package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestIsOpen(t *testing.T) {
	today := day("2024-10-01")

	assert.True(t, IsOpen("2024-09-01", "2024-12-01", today), "window contains today")
	assert.True(t, IsOpen("2024-10-01", "", today), "opens today, no close")
	assert.True(t, IsOpen("2024-09-01", "2024-10-01", today), "closes today")

	assert.False(t, IsOpen("2025-01-01", "", today), "opens in the future")
	assert.False(t, IsOpen("2024-01-01", "2024-06-30", today), "already closed")
	assert.False(t, IsOpen("", "2024-12-01", today), "no open date means closed")
	assert.False(t, IsOpen("", "", today))

	// fail closed on garbage, never panic
	assert.False(t, IsOpen("garbage", "2024-12-01", today))
	assert.False(t, IsOpen("2024-09-01", "garbage", today))
}

func TestRoleRecordOpen(t *testing.T) {
	r := RoleRecord{ApplicationOpens: "2024-09-01", ApplicationCloses: "2024-12-01"}
	assert.True(t, r.Open(day("2024-10-01")))
	assert.False(t, r.Open(day("2025-10-01")))
}
