package domain

import "time"

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// TimeDiff - absolute duration split into days, hours and minutes.
// Seconds are dropped.
type TimeDiff struct {
	Days    int64 `json:"days"`
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
}

// Diff returns the absolute difference between a and b. Fractional seconds
// are truncated before the breakdown.
func Diff(a, b time.Time) TimeDiff {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	total := int64(d / time.Second)

	days, rem := total/secondsPerDay, total%secondsPerDay
	hours, rem := rem/secondsPerHour, rem%secondsPerHour
	minutes := rem / secondsPerMinute

	return TimeDiff{Days: days, Hours: hours, Minutes: minutes}
}
