package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2026, 3, 10, 17, 45, 12, 500, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), StartOfDay(in))
}

func TestIsSameDay(t *testing.T) {
	morning := time.Date(2026, 3, 10, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 11, 0, 30, 0, 0, time.UTC)

	assert.True(t, IsSameDay(morning, evening))
	assert.False(t, IsSameDay(evening, nextDay))
}

func TestDaysUntil(t *testing.T) {
	from := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		until time.Time
		want  int
	}{
		{"ten days ahead", time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC), 10},
		{"tomorrow early morning still counts as one day", time.Date(2026, 3, 11, 0, 30, 0, 0, time.UTC), 1},
		{"same day", time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC), 0},
		{"past date is negative", time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC), -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(from, tt.until))
		})
	}
}

func TestDaysBetween(t *testing.T) {
	a := Date(2026, 3, 10)
	b := Date(2026, 3, 15)

	assert.Equal(t, 5, DaysBetween(a, b))
	assert.Equal(t, 5, DaysBetween(b, a))
}

func TestFormatDateStr(t *testing.T) {
	assert.Equal(t, "2026-03-10", FormatDateStr(Date(2026, 3, 10)))
}

func TestFormatRelative(t *testing.T) {
	assert.Equal(t, "just now", FormatRelative(Now()))
	assert.Equal(t, "2 hours ago", FormatRelative(Now().Add(-2*time.Hour)))
	assert.Equal(t, "in 3 days", FormatRelative(Now().Add(72*time.Hour+time.Minute)))
}
