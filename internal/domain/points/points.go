// Package points implements the gamification scoring core: the point
// type vocabulary, the value policy, and the append-only ledger of
// individual awards.
package points

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ══════════════════════════════════════════════════════════════════════════════
// POINT TYPES & VALUE POLICY
// ══════════════════════════════════════════════════════════════════════════════

// Type names the reason category of a point award.
type Type string

const (
	// TypeRegistration - signed up for an event.
	TypeRegistration Type = "registration"
	// TypeAttendance - showed up to an event.
	TypeAttendance Type = "attendance"
	// TypeCompletion - finished an event.
	TypeCompletion Type = "completion"
	// TypeCertificate - earned a certificate.
	TypeCertificate Type = "certificate"
	// TypeEarlyBird - registered well ahead of the event date.
	TypeEarlyBird Type = "early_bird"
	// TypeFirstTime - first ever event registration.
	TypeFirstTime Type = "first_time"
	// TypeStreak - kept up a participation streak.
	TypeStreak Type = "streak"
	// TypeFeedback - submitted event feedback.
	TypeFeedback Type = "feedback"
)

// Value returns the fixed award amount for a point type.
// Unknown types are worth zero rather than an error, so an award for
// a type this version does not know about records a zero-value entry
// instead of failing the caller's operation.
func Value(t Type) int {
	switch t {
	case TypeRegistration:
		return 5
	case TypeAttendance:
		return 10
	case TypeCompletion:
		return 15
	case TypeCertificate:
		return 25
	case TypeEarlyBird:
		return 5
	case TypeFirstTime:
		return 10
	case TypeStreak:
		return 20
	case TypeFeedback:
		return 3
	default:
		return 0
	}
}

// DefaultReason builds the fallback reason line for a point type.
func DefaultReason(t Type) string {
	return fmt.Sprintf("Points for %s", t)
}

// ══════════════════════════════════════════════════════════════════════════════
// LEDGER RECORD
// ══════════════════════════════════════════════════════════════════════════════

// Record is one immutable entry of the points ledger. Records are
// never updated or deleted; a user's true total is the sum of their
// records.
type Record struct {
	// ID - unique identifier of the award.
	ID string

	// UserEmail - who earned the points.
	UserEmail string

	// EventID - the event the award relates to, if any.
	EventID string

	// Points - the awarded amount.
	Points int

	// Type - the award category.
	Type Type

	// Reason - human-readable explanation shown in activity feeds.
	Reason string

	// AwardedAt - when the award happened.
	AwardedAt time.Time
}

// NewRecord creates a ledger record awarded now.
// An empty reason falls back to the default for the point type.
func NewRecord(userEmail, eventID string, t Type, reason string) Record {
	if reason == "" {
		reason = DefaultReason(t)
	}
	return Record{
		ID:        uuid.NewString(),
		UserEmail: userEmail,
		EventID:   eventID,
		Points:    Value(t),
		Type:      t,
		Reason:    reason,
		AwardedAt: time.Now().UTC(),
	}
}
