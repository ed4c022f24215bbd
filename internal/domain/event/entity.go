// Package event contains the extracurricular event domain model.
// An Event owns its participant roster; the roster enforces the
// capacity and one-registration-per-email invariants.
package event

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mergington-hub/school-events-hub/pkg/timeutil"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENUMS
// ══════════════════════════════════════════════════════════════════════════════

// Status determines the lifecycle state of an event.
type Status string

const (
	// StatusDraft - the event is being prepared and is not visible yet.
	StatusDraft Status = "draft"
	// StatusPublished - the event is open for registration.
	StatusPublished Status = "published"
	// StatusCancelled - the event was cancelled.
	StatusCancelled Status = "cancelled"
	// StatusCompleted - the event has taken place.
	StatusCompleted Status = "completed"
)

// IsValid checks that the status is one of the known values.
func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsVisible returns true if the event appears in public listings.
func (s Status) IsVisible() bool {
	return s == StatusPublished
}

// Type determines whether joining the event costs money.
type Type string

const (
	// TypeFree - no fee.
	TypeFree Type = "free"
	// TypePaid - a fee applies.
	TypePaid Type = "paid"
)

// IsValid checks that the type is one of the known values.
func (t Type) IsValid() bool {
	return t == TypeFree || t == TypePaid
}

// ══════════════════════════════════════════════════════════════════════════════
// PARTICIPANT
// ══════════════════════════════════════════════════════════════════════════════

// Participant is one enrollment of a user into one event.
// At most one participant per (event, email) pair exists at any time.
type Participant struct {
	// Email - the enrolled user's email.
	Email string

	// Name - the enrolled user's display name at registration time.
	Name string

	// EnrollmentDate - when the registration happened.
	EnrollmentDate time.Time

	// Points - points earned within this event.
	Points int

	// Certificates - certificate identifiers issued for this enrollment.
	Certificates []string

	// ChatGroup - invite link of the event's chat group, if shared.
	ChatGroup string

	// Badges - badge IDs shown on the event roster (display only).
	Badges []string
}

// NewParticipant creates a participant enrolled now.
func NewParticipant(email, name string) Participant {
	return Participant{
		Email:          email,
		Name:           name,
		EnrollmentDate: time.Now().UTC(),
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: EVENT
// ══════════════════════════════════════════════════════════════════════════════

// Event is an extracurricular activity students can register for.
type Event struct {
	// ID - unique identifier.
	ID string

	// Name - event title.
	Name string

	// Description - what the event is.
	Description string

	// Organizer - display name of the organizer.
	Organizer string

	// OrganizerEmail - contact email of the organizer.
	OrganizerEmail string

	// Schedule - human-readable recurring schedule ("Fridays, 3:30 PM").
	Schedule string

	// Date - the calendar date of the (next) occurrence; drives the
	// early-bird registration bonus.
	Date time.Time

	// MaxParticipants - roster capacity.
	MaxParticipants int

	// Type - free or paid.
	Type Type

	// Fee - cost of joining, for paid events.
	Fee float64

	// BannerURL - promo image (optional).
	BannerURL string

	// ChatGroup - invite link to the event's chat group (optional).
	ChatGroup string

	// Status - current lifecycle state.
	Status Status

	// Participants - current roster, in enrollment order.
	Participants []Participant

	// CreatedAt - when the event record was created.
	CreatedAt time.Time

	// UpdatedAt - when the event record was last modified.
	UpdatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidName - the event name is empty.
	ErrInvalidName = errors.New("invalid event name: cannot be empty")

	// ErrInvalidCapacity - the capacity is not positive.
	ErrInvalidCapacity = errors.New("invalid capacity: must be positive")

	// ErrAlreadyRegistered - the email is already on the roster.
	ErrAlreadyRegistered = errors.New("already registered for this event")

	// ErrEventFull - the roster is at capacity.
	ErrEventFull = errors.New("event is full")

	// ErrNotRegistered - the email is not on the roster.
	ErrNotRegistered = errors.New("user is not registered for this event")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewEventParams contains the parameters for creating an event.
type NewEventParams struct {
	ID              string
	Name            string
	Description     string
	Organizer       string
	OrganizerEmail  string
	Schedule        string
	Date            time.Time
	MaxParticipants int
	Type            Type
	Fee             float64
	ChatGroup       string
}

// NewEvent creates a published event with validation.
func NewEvent(params NewEventParams) (*Event, error) {
	if params.ID == "" {
		return nil, errors.New("event id is required")
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, ErrInvalidName
	}

	if params.MaxParticipants <= 0 {
		return nil, ErrInvalidCapacity
	}

	eventType := params.Type
	if eventType == "" {
		eventType = TypeFree
	}
	if !eventType.IsValid() {
		return nil, fmt.Errorf("invalid event type: %s", params.Type)
	}

	now := time.Now().UTC()

	return &Event{
		ID:              params.ID,
		Name:            name,
		Description:     params.Description,
		Organizer:       params.Organizer,
		OrganizerEmail:  params.OrganizerEmail,
		Schedule:        params.Schedule,
		Date:            params.Date,
		MaxParticipants: params.MaxParticipants,
		Type:            eventType,
		Fee:             params.Fee,
		ChatGroup:       params.ChatGroup,
		Status:          StatusPublished,
		Participants:    make([]Participant, 0),
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS (Roster invariants live here)
// ══════════════════════════════════════════════════════════════════════════════

// FindParticipant returns the participant with the given email, or nil.
func (e *Event) FindParticipant(email string) *Participant {
	for i := range e.Participants {
		if e.Participants[i].Email == email {
			return &e.Participants[i]
		}
	}
	return nil
}

// IsRegistered returns true if the email is on the roster.
func (e *Event) IsRegistered(email string) bool {
	return e.FindParticipant(email) != nil
}

// IsFull returns true if the roster is at capacity.
func (e *Event) IsFull() bool {
	return len(e.Participants) >= e.MaxParticipants
}

// Register adds a participant to the roster.
// Enforces the uniqueness and capacity invariants.
func (e *Event) Register(email, name string) (*Participant, error) {
	if e.IsRegistered(email) {
		return nil, ErrAlreadyRegistered
	}
	if e.IsFull() {
		return nil, ErrEventFull
	}

	p := NewParticipant(email, name)
	if e.ChatGroup != "" {
		p.ChatGroup = e.ChatGroup
	}

	e.Participants = append(e.Participants, p)
	e.UpdatedAt = time.Now().UTC()

	return &e.Participants[len(e.Participants)-1], nil
}

// Unregister removes any participant with the given email.
// Removing an absent email is a no-op; it reports whether a
// participant was actually removed.
func (e *Event) Unregister(email string) bool {
	kept := e.Participants[:0]
	removed := false
	for _, p := range e.Participants {
		if p.Email == email {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	e.Participants = kept

	if removed {
		e.UpdatedAt = time.Now().UTC()
	}
	return removed
}

// DaysUntil returns the number of whole calendar days from the given
// time until the event date. Negative for past events.
func (e *Event) DaysUntil(from time.Time) int {
	return timeutil.DaysUntil(from, e.Date)
}

// String returns a string representation of the event for logging.
func (e *Event) String() string {
	return fmt.Sprintf(
		"Event{ID: %s, Name: %s, Status: %s, Roster: %d/%d}",
		e.ID, e.Name, e.Status, len(e.Participants), e.MaxParticipants,
	)
}

// Clone creates a deep copy of the event.
func (e *Event) Clone() *Event {
	if e == nil {
		return nil
	}

	clone := *e
	clone.Participants = make([]Participant, len(e.Participants))
	copy(clone.Participants, e.Participants)
	return &clone
}
