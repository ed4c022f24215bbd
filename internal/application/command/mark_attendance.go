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
// MARK ATTENDANCE COMMAND
// Awards attendance points to a registered participant. Attendance
// requires a roster entry; marking an unregistered user fails.
// ══════════════════════════════════════════════════════════════════════════════

// MarkAttendanceCommand contains the data to record attendance.
type MarkAttendanceCommand struct {
	// EventID identifies the attended event.
	EventID string

	// UserEmail is who attended.
	UserEmail string
}

// Validate validates the command.
func (c MarkAttendanceCommand) Validate() error {
	if c.EventID == "" {
		return errors.New("mark_attendance: event_id is required")
	}
	if c.UserEmail == "" {
		return errors.New("mark_attendance: user_email is required")
	}
	return nil
}

// MarkAttendanceResult contains the result of recording attendance.
type MarkAttendanceResult struct {
	// EventID is the attended event.
	EventID string

	// UserEmail is who attended.
	UserEmail string

	// PointsEarned is the attendance award.
	PointsEarned int
}

// MarkAttendanceHandler handles the MarkAttendanceCommand.
type MarkAttendanceHandler struct {
	eventRepo   event.Repository
	awardPoints *AwardPointsHandler
	publisher   shared.EventPublisher
}

// NewMarkAttendanceHandler creates a new MarkAttendanceHandler.
func NewMarkAttendanceHandler(
	eventRepo event.Repository,
	awardPoints *AwardPointsHandler,
	publisher shared.EventPublisher,
) *MarkAttendanceHandler {
	return &MarkAttendanceHandler{
		eventRepo:   eventRepo,
		awardPoints: awardPoints,
		publisher:   publisher,
	}
}

// Handle executes the mark attendance command.
func (h *MarkAttendanceHandler) Handle(ctx context.Context, cmd MarkAttendanceCommand) (*MarkAttendanceResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("mark_attendance: validation failed: %w", err)
	}

	e, err := h.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		return nil, fmt.Errorf("mark_attendance: %w", err)
	}

	if !e.IsRegistered(cmd.UserEmail) {
		return nil, shared.ErrNotRegistered
	}

	earned := 0
	if res, err := h.awardPoints.Handle(ctx, AwardPointsCommand{
		UserEmail: cmd.UserEmail,
		EventID:   e.ID,
		PointType: points.TypeAttendance,
		Reason:    fmt.Sprintf("Attended %s", e.Name),
	}); err == nil {
		earned = res.Points
	}

	if h.publisher != nil {
		_ = h.publisher.Publish(shared.NewAttendanceMarkedEvent(e.ID, cmd.UserEmail, earned))
	}

	return &MarkAttendanceResult{
		EventID:      e.ID,
		UserEmail:    cmd.UserEmail,
		PointsEarned: earned,
	}, nil
}
