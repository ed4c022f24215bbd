package points

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	tests := []struct {
		name      string
		pointType Type
		want      int
	}{
		{"registration", TypeRegistration, 5},
		{"attendance", TypeAttendance, 10},
		{"completion", TypeCompletion, 15},
		{"certificate", TypeCertificate, 25},
		{"early bird", TypeEarlyBird, 5},
		{"first time", TypeFirstTime, 10},
		{"streak", TypeStreak, 20},
		{"feedback", TypeFeedback, 3},
		{"unknown type is worth zero", Type("bonus_round"), 0},
		{"empty type is worth zero", Type(""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Value(tt.pointType))
		})
	}
}

func TestNewRecord(t *testing.T) {
	t.Run("fills value, id and timestamp", func(t *testing.T) {
		before := time.Now().UTC()
		r := NewRecord("michael@mergington.edu", "e1", TypeAttendance, "Showed up to chess club")

		require.NotEmpty(t, r.ID)
		assert.Equal(t, "michael@mergington.edu", r.UserEmail)
		assert.Equal(t, "e1", r.EventID)
		assert.Equal(t, 10, r.Points)
		assert.Equal(t, TypeAttendance, r.Type)
		assert.Equal(t, "Showed up to chess club", r.Reason)
		assert.False(t, r.AwardedAt.Before(before))
	})

	t.Run("empty reason falls back to default", func(t *testing.T) {
		r := NewRecord("emma@mergington.edu", "e2", TypeCompletion, "")
		assert.Equal(t, "Points for completion", r.Reason)
	})

	t.Run("unknown type records a zero-value entry", func(t *testing.T) {
		r := NewRecord("liam@mergington.edu", "", Type("mystery"), "")
		assert.Equal(t, 0, r.Points)
		assert.Equal(t, "Points for mystery", r.Reason)
	})

	t.Run("ids are unique", func(t *testing.T) {
		a := NewRecord("a@mergington.edu", "e1", TypeRegistration, "")
		b := NewRecord("a@mergington.edu", "e1", TypeRegistration, "")
		assert.NotEqual(t, a.ID, b.ID)
	})
}
