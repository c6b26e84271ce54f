package utils

import (
	"fmt"
	"time"
)

var koreanWeekdays = [...]string{"일", "월", "화", "수", "목", "금", "토"}

// KoreanWeekday returns the one-letter Korean day name.
func KoreanWeekday(t time.Time) string {
	return koreanWeekdays[t.Weekday()]
}

// WeekStart returns midnight of the Monday of t's week.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := DateOnly(t)
	return d.AddDate(0, 0, -offset)
}

// DateOnly truncates t to midnight in its own location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59 of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first day 00:00:00 and last day 23:59:59 of a month.
func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	end := time.Date(year, month, DaysIn(year, month), 23, 59, 59, 0, loc)
	return start, end
}

// DateKey renders the calendar day of t, ignoring its location.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ShortKoreanDate renders "M/D(요일)".
func ShortKoreanDate(t time.Time) string {
	return fmt.Sprintf("%d/%d(%s)", int(t.Month()), t.Day(), KoreanWeekday(t))
}

// IsWeekend reports Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
