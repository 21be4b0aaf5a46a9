package domain

import (
	"testing"
	"time"
)

func TestDiff(t *testing.T) {
	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		a, b time.Time
		want TimeDiff
	}{
		{"same instant", base, base, TimeDiff{}},
		{"one hour", base.Add(time.Hour), base, TimeDiff{Hours: 1}},
		{"day two hours", base, base.Add(-26 * time.Hour), TimeDiff{Days: 1, Hours: 2}},
		{"seconds dropped", base.Add(3*time.Minute + 59*time.Second), base, TimeDiff{Minutes: 3}},
		{"fraction truncated", base.Add(59*time.Second + 999*time.Millisecond), base, TimeDiff{}},
		{"many days", base.Add(400*24*time.Hour + 23*time.Hour + 59*time.Minute), base, TimeDiff{Days: 400, Hours: 23, Minutes: 59}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Diff(tc.a, tc.b); got != tc.want {
				t.Fatalf("Diff = %+v; want %+v", got, tc.want)
			}
		})
	}
}

func TestDiffSymmetricAndBounded(t *testing.T) {
	base := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)
	offsets := []time.Duration{
		0,
		time.Second,
		-time.Second,
		90 * time.Minute,
		-(47*time.Hour + 59*time.Minute + 30*time.Second),
		1234567 * time.Second,
		-987654321 * time.Millisecond,
	}

	for _, off := range offsets {
		other := base.Add(off)
		ab := Diff(base, other)
		ba := Diff(other, base)
		if ab != ba {
			t.Fatalf("Diff not symmetric for %v: %+v vs %+v", off, ab, ba)
		}
		if ab.Days < 0 || ab.Hours < 0 || ab.Hours > 23 || ab.Minutes < 0 || ab.Minutes > 59 {
			t.Fatalf("Diff out of range for %v: %+v", off, ab)
		}
	}
}

func TestDiffIgnoresLocation(t *testing.T) {
	utc := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	other := utc.In(time.FixedZone("UTC+5", 5*3600))
	if got := Diff(utc, other); got != (TimeDiff{}) {
		t.Fatalf("Diff across zones = %+v; want zero", got)
	}
}
