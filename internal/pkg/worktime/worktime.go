// Package worktime reduces a clock-in/clock-out pair to worked and overtime
// durations against a standard closing time.
package worktime

import (
	"fmt"
	"time"
)

// Clock is a time of day with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM".
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid clock %q: %w", s, err)
	}
	return Clock{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// MustParseClock is ParseClock for values validated at startup.
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// On places the clock on the calendar day of t, in t's location.
func (c Clock) On(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), c.Hour, c.Minute, 0, 0, t.Location())
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Result holds the outcome of Compute.
type Result struct {
	Work     time.Duration
	Overtime time.Duration
}

// Total is work plus overtime, which is how the weekly view renders its
// third column.
func (r Result) Total() time.Duration {
	return r.Work + r.Overtime
}

// Compute returns out-in as work time, and the part of it after the close
// on in's calendar day as overtime. Callers must ensure out >= in.
func Compute(in, out time.Time, close Clock) Result {
	res := Result{Work: out.Sub(in)}

	closeAt := close.On(in)
	if out.After(closeAt) {
		from := in
		if closeAt.After(from) {
			from = closeAt
		}
		res.Overtime = out.Sub(from)
	}
	return res
}

// FormatHHMM renders d as zero padded hours and minutes, flooring both.
// Negative durations render as 00:00.
func FormatHHMM(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/3600, (secs%3600)/60)
}

// WholeHours truncates d to whole hours.
func WholeHours(d time.Duration) int64 {
	return int64(d / time.Hour)
}
