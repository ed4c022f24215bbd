// Package shared contains common domain types, errors, events, and value objects
// that are used across all domain packages.
package shared

import (
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each one represents something significant that
// happened in the domain; observers (logging, future integrations)
// subscribe to them on the event bus.
const (
	// Participant lifecycle events
	EventParticipantRegistered   EventType = "participant.registered"
	EventParticipantUnregistered EventType = "participant.unregistered"
	EventAttendanceMarked        EventType = "event.attendance_marked"
	EventCompleted               EventType = "event.completed"

	// Gamification events
	EventPointsAwarded EventType = "points.awarded"
	EventBadgeEarned   EventType = "badge.earned"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map for serialization.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
	Version     int       `json:"version"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
		Version:     1,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Participant Lifecycle Events
// ═══════════════════════════════════════════════════════════════════════════

// ParticipantRegisteredEvent is emitted when a user registers for an event.
type ParticipantRegisteredEvent struct {
	BaseEvent
	EventID      string `json:"event_id"`
	UserEmail    string `json:"user_email"`
	UserName     string `json:"user_name"`
	EarlyBird    bool   `json:"early_bird"`
	PointsEarned int    `json:"points_earned"`
}

// Payload implements Event interface.
func (e ParticipantRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"event_id":      e.EventID,
		"user_email":    e.UserEmail,
		"user_name":     e.UserName,
		"early_bird":    e.EarlyBird,
		"points_earned": e.PointsEarned,
	}
}

// NewParticipantRegisteredEvent creates a new ParticipantRegisteredEvent.
func NewParticipantRegisteredEvent(eventID, email, name string, earlyBird bool, points int) ParticipantRegisteredEvent {
	return ParticipantRegisteredEvent{
		BaseEvent:    NewBaseEvent(EventParticipantRegistered, eventID),
		EventID:      eventID,
		UserEmail:    email,
		UserName:     name,
		EarlyBird:    earlyBird,
		PointsEarned: points,
	}
}

// ParticipantUnregisteredEvent is emitted when a user leaves an event roster.
type ParticipantUnregisteredEvent struct {
	BaseEvent
	EventID   string `json:"event_id"`
	UserEmail string `json:"user_email"`
	Removed   bool   `json:"removed"` // false when the email was not on the roster
}

// Payload implements Event interface.
func (e ParticipantUnregisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"event_id":   e.EventID,
		"user_email": e.UserEmail,
		"removed":    e.Removed,
	}
}

// NewParticipantUnregisteredEvent creates a new ParticipantUnregisteredEvent.
func NewParticipantUnregisteredEvent(eventID, email string, removed bool) ParticipantUnregisteredEvent {
	return ParticipantUnregisteredEvent{
		BaseEvent: NewBaseEvent(EventParticipantUnregistered, eventID),
		EventID:   eventID,
		UserEmail: email,
		Removed:   removed,
	}
}

// AttendanceMarkedEvent is emitted when attendance is recorded for a participant.
type AttendanceMarkedEvent struct {
	BaseEvent
	EventID      string `json:"event_id"`
	UserEmail    string `json:"user_email"`
	PointsEarned int    `json:"points_earned"`
}

// Payload implements Event interface.
func (e AttendanceMarkedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"event_id":      e.EventID,
		"user_email":    e.UserEmail,
		"points_earned": e.PointsEarned,
	}
}

// NewAttendanceMarkedEvent creates a new AttendanceMarkedEvent.
func NewAttendanceMarkedEvent(eventID, email string, points int) AttendanceMarkedEvent {
	return AttendanceMarkedEvent{
		BaseEvent:    NewBaseEvent(EventAttendanceMarked, eventID),
		EventID:      eventID,
		UserEmail:    email,
		PointsEarned: points,
	}
}

// EventCompletedEvent is emitted when a participant completes an event.
type EventCompletedEvent struct {
	BaseEvent
	EventID      string `json:"event_id"`
	UserEmail    string `json:"user_email"`
	PointsEarned int    `json:"points_earned"`
}

// Payload implements Event interface.
func (e EventCompletedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"event_id":      e.EventID,
		"user_email":    e.UserEmail,
		"points_earned": e.PointsEarned,
	}
}

// NewEventCompletedEvent creates a new EventCompletedEvent.
func NewEventCompletedEvent(eventID, email string, points int) EventCompletedEvent {
	return EventCompletedEvent{
		BaseEvent:    NewBaseEvent(EventCompleted, eventID),
		EventID:      eventID,
		UserEmail:    email,
		PointsEarned: points,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Gamification Events
// ═══════════════════════════════════════════════════════════════════════════

// PointsAwardedEvent is emitted for every ledger append.
type PointsAwardedEvent struct {
	BaseEvent
	RecordID  string `json:"record_id"`
	UserEmail string `json:"user_email"`
	EventID   string `json:"event_id"`
	PointType string `json:"point_type"`
	Points    int    `json:"points"`
	Reason    string `json:"reason"`
}

// Payload implements Event interface.
func (e PointsAwardedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"record_id":  e.RecordID,
		"user_email": e.UserEmail,
		"event_id":   e.EventID,
		"point_type": e.PointType,
		"points":     e.Points,
		"reason":     e.Reason,
	}
}

// NewPointsAwardedEvent creates a new PointsAwardedEvent.
func NewPointsAwardedEvent(recordID, email, eventID, pointType string, points int, reason string) PointsAwardedEvent {
	return PointsAwardedEvent{
		BaseEvent: NewBaseEvent(EventPointsAwarded, email),
		RecordID:  recordID,
		UserEmail: email,
		EventID:   eventID,
		PointType: pointType,
		Points:    points,
		Reason:    reason,
	}
}

// BadgeEarnedEvent is emitted when a badge is newly awarded to a user.
type BadgeEarnedEvent struct {
	BaseEvent
	UserEmail string `json:"user_email"`
	BadgeID   string `json:"badge_id"`
	Level     int    `json:"level"`
}

// Payload implements Event interface.
func (e BadgeEarnedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_email": e.UserEmail,
		"badge_id":   e.BadgeID,
		"level":      e.Level,
	}
}

// NewBadgeEarnedEvent creates a new BadgeEarnedEvent.
func NewBadgeEarnedEvent(email, badgeID string, level int) BadgeEarnedEvent {
	return BadgeEarnedEvent{
		BaseEvent: NewBaseEvent(EventBadgeEarned, email),
		UserEmail: email,
		BadgeID:   badgeID,
		Level:     level,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Event Bus Contracts
// ═══════════════════════════════════════════════════════════════════════════

// EventHandler is a function that handles an event.
type EventHandler func(event Event) error

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish sends an event to subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for an event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}
