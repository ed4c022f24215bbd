package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/mergington-hub/school-events-hub/internal/domain/event"
	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// UNREGISTER PARTICIPANT COMMAND
// Removes a user from an event roster. Removing an absent email
// succeeds; earned ledger entries are never taken back.
// ══════════════════════════════════════════════════════════════════════════════

// UnregisterParticipantCommand contains the data to leave an event.
type UnregisterParticipantCommand struct {
	// EventID identifies the event to leave.
	EventID string

	// UserEmail is who unregisters.
	UserEmail string
}

// Validate validates the command.
func (c UnregisterParticipantCommand) Validate() error {
	if c.EventID == "" {
		return errors.New("unregister_participant: event_id is required")
	}
	if c.UserEmail == "" {
		return errors.New("unregister_participant: user_email is required")
	}
	return nil
}

// UnregisterParticipantResult contains the result of leaving an event.
type UnregisterParticipantResult struct {
	// EventID is the left event.
	EventID string

	// UserEmail is who unregistered.
	UserEmail string

	// Removed reports whether a roster entry actually existed.
	Removed bool
}

// UnregisterParticipantHandler handles the UnregisterParticipantCommand.
type UnregisterParticipantHandler struct {
	eventRepo event.Repository
	publisher shared.EventPublisher
}

// NewUnregisterParticipantHandler creates a new UnregisterParticipantHandler.
func NewUnregisterParticipantHandler(eventRepo event.Repository, publisher shared.EventPublisher) *UnregisterParticipantHandler {
	return &UnregisterParticipantHandler{
		eventRepo: eventRepo,
		publisher: publisher,
	}
}

// Handle executes the unregister participant command.
func (h *UnregisterParticipantHandler) Handle(ctx context.Context, cmd UnregisterParticipantCommand) (*UnregisterParticipantResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("unregister_participant: validation failed: %w", err)
	}

	e, err := h.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		return nil, fmt.Errorf("unregister_participant: %w", err)
	}

	removed := e.Unregister(cmd.UserEmail)
	if removed {
		if err := h.eventRepo.Save(ctx, e); err != nil {
			return nil, fmt.Errorf("unregister_participant: save roster: %w", err)
		}
	}

	if h.publisher != nil {
		_ = h.publisher.Publish(shared.NewParticipantUnregisteredEvent(e.ID, cmd.UserEmail, removed))
	}

	return &UnregisterParticipantResult{
		EventID:   e.ID,
		UserEmail: cmd.UserEmail,
		Removed:   removed,
	}, nil
}
