// Package timeutil provides calendar helpers for the school events hub.
// All dates are handled in UTC; registration bonuses and activity
// feeds compare whole calendar days, never raw durations.
// No external dependencies - uses only standard library.
package timeutil

import (
	"fmt"
	"time"
)

// Now returns the current time in UTC.
func Now() time.Time {
	return time.Now().UTC()
}

// Date creates a UTC time with the given date.
func Date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// StartOfDay returns the start of the day (00:00:00) in UTC.
func StartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the end of the day (23:59:59.999999999) in UTC.
func EndOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 999999999, time.UTC)
}

// IsSameDay checks if two times fall on the same UTC calendar day.
func IsSameDay(t1, t2 time.Time) bool {
	u1, u2 := t1.UTC(), t2.UTC()
	return u1.Year() == u2.Year() && u1.YearDay() == u2.YearDay()
}

// DaysUntil returns the number of whole calendar days from `from`
// until `until`. Negative when `until` is in the past.
func DaysUntil(from, until time.Time) int {
	a := StartOfDay(from)
	b := StartOfDay(until)
	return int(b.Sub(a).Hours() / 24)
}

// DaysBetween calculates the absolute number of days between two times.
func DaysBetween(t1, t2 time.Time) int {
	days := DaysUntil(t1, t2)
	if days < 0 {
		days = -days
	}
	return days
}

// FormatDateStr formats a time as a date string (2006-01-02).
func FormatDateStr(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// FormatDateTimeStr formats a time as a date-time string.
func FormatDateTimeStr(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04")
}

// FormatRelative formats a time relative to now ("2 hours ago", "in 3 days").
func FormatRelative(t time.Time) string {
	now := Now()
	d := now.Sub(t)

	if d >= 0 {
		return formatPastDuration(d)
	}
	return formatFutureDuration(-d)
}

func formatPastDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		m := int(d.Minutes())
		return fmt.Sprintf("%d min ago", m)
	case d < 24*time.Hour:
		h := int(d.Hours())
		if h == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", h)
	default:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "yesterday"
		}
		return fmt.Sprintf("%d days ago", days)
	}
}

func formatFutureDuration(d time.Duration) string {
	switch {
	case d < time.Hour:
		m := int(d.Minutes())
		return fmt.Sprintf("in %d min", m)
	case d < 24*time.Hour:
		h := int(d.Hours())
		if h == 1 {
			return "in 1 hour"
		}
		return fmt.Sprintf("in %d hours", h)
	default:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "tomorrow"
		}
		return fmt.Sprintf("in %d days", days)
	}
}
