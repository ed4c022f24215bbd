package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/mergington-hub/school-events-hub/internal/domain/event"
	"github.com/mergington-hub/school-events-hub/internal/domain/points"
	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// COMPLETE EVENT COMMAND
// Awards completion points to a registered participant when they
// finish an event. Completion requires a roster entry.
// ══════════════════════════════════════════════════════════════════════════════

// CompleteEventCommand contains the data to record a completion.
type CompleteEventCommand struct {
	// EventID identifies the completed event.
	EventID string

	// UserEmail is who completed it.
	UserEmail string
}

// Validate validates the command.
func (c CompleteEventCommand) Validate() error {
	if c.EventID == "" {
		return errors.New("complete_event: event_id is required")
	}
	if c.UserEmail == "" {
		return errors.New("complete_event: user_email is required")
	}
	return nil
}

// CompleteEventResult contains the result of recording a completion.
type CompleteEventResult struct {
	// EventID is the completed event.
	EventID string

	// UserEmail is who completed it.
	UserEmail string

	// PointsEarned is the completion award.
	PointsEarned int
}

// CompleteEventHandler handles the CompleteEventCommand.
type CompleteEventHandler struct {
	eventRepo   event.Repository
	awardPoints *AwardPointsHandler
	publisher   shared.EventPublisher
}

// NewCompleteEventHandler creates a new CompleteEventHandler.
func NewCompleteEventHandler(
	eventRepo event.Repository,
	awardPoints *AwardPointsHandler,
	publisher shared.EventPublisher,
) *CompleteEventHandler {
	return &CompleteEventHandler{
		eventRepo:   eventRepo,
		awardPoints: awardPoints,
		publisher:   publisher,
	}
}

// Handle executes the complete event command.
func (h *CompleteEventHandler) Handle(ctx context.Context, cmd CompleteEventCommand) (*CompleteEventResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("complete_event: validation failed: %w", err)
	}

	e, err := h.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		return nil, fmt.Errorf("complete_event: %w", err)
	}

	if !e.IsRegistered(cmd.UserEmail) {
		return nil, shared.ErrNotRegistered
	}

	earned := 0
	if res, err := h.awardPoints.Handle(ctx, AwardPointsCommand{
		UserEmail: cmd.UserEmail,
		EventID:   e.ID,
		PointType: points.TypeCompletion,
		Reason:    fmt.Sprintf("Completed %s", e.Name),
	}); err == nil {
		earned = res.Points
	}

	if h.publisher != nil {
		_ = h.publisher.Publish(shared.NewEventCompletedEvent(e.ID, cmd.UserEmail, earned))
	}

	return &CompleteEventResult{
		EventID:      e.ID,
		UserEmail:    cmd.UserEmail,
		PointsEarned: earned,
	}, nil
}
