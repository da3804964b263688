package service

import (
	"time"
)

const day = 24 * time.Hour

// CalculateFine returns the fine owed for returning at returnedAt against a
// dueAt deadline. Lateness is billed in whole days, rounded up: returning at
// or before the due instant costs nothing, one nanosecond past it costs a
// full day.
func CalculateFine(dueAt, returnedAt time.Time, finePerDay int) int {
	late := returnedAt.Sub(dueAt)
	if late <= 0 {
		return 0
	}
	days := int(late / day)
	if late%day != 0 {
		days++
	}
	return days * finePerDay
}
