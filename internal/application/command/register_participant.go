package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mergington-hub/school-events-hub/internal/domain/event"
	"github.com/mergington-hub/school-events-hub/internal/domain/points"
	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
	"github.com/mergington-hub/school-events-hub/pkg/timeutil"
)

// Registrations made more than this many calendar days before the
// event date earn the early-bird bonus.
const earlyBirdThresholdDays = 7

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER PARTICIPANT COMMAND
// Adds a user to an event roster and awards the registration points,
// plus the early-bird bonus for signing up well ahead of the date.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterParticipantCommand contains the data to register for an event.
type RegisterParticipantCommand struct {
	// EventID identifies the event to join.
	EventID string

	// UserEmail is who registers.
	UserEmail string

	// UserName is the display name stored on the roster.
	UserName string
}

// Validate validates the command.
func (c RegisterParticipantCommand) Validate() error {
	if c.EventID == "" {
		return errors.New("register_participant: event_id is required")
	}
	if c.UserEmail == "" {
		return errors.New("register_participant: user_email is required")
	}
	return nil
}

// RegisterParticipantResult contains the result of a registration.
type RegisterParticipantResult struct {
	// EventID is the joined event.
	EventID string

	// EventName is the joined event's title.
	EventName string

	// UserEmail is who registered.
	UserEmail string

	// PointsEarned is the total awarded for this registration,
	// including the early-bird bonus.
	PointsEarned int

	// TotalPoints is the user's ledger-summed total after this
	// registration.
	TotalPoints int

	// EarlyBird reports whether the bonus applied.
	EarlyBird bool

	// ChatGroup is the event's chat invite link, if any.
	ChatGroup string

	// RegisteredAt is when the roster entry was created.
	RegisteredAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// RegisterParticipantHandler handles the RegisterParticipantCommand.
type RegisterParticipantHandler struct {
	eventRepo   event.Repository
	ledger      points.Ledger
	awardPoints *AwardPointsHandler
	publisher   shared.EventPublisher
}

// NewRegisterParticipantHandler creates a new RegisterParticipantHandler.
func NewRegisterParticipantHandler(
	eventRepo event.Repository,
	ledger points.Ledger,
	awardPoints *AwardPointsHandler,
	publisher shared.EventPublisher,
) *RegisterParticipantHandler {
	return &RegisterParticipantHandler{
		eventRepo:   eventRepo,
		ledger:      ledger,
		awardPoints: awardPoints,
		publisher:   publisher,
	}
}

// Handle executes the register participant command.
func (h *RegisterParticipantHandler) Handle(ctx context.Context, cmd RegisterParticipantCommand) (*RegisterParticipantResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("register_participant: validation failed: %w", err)
	}

	e, err := h.eventRepo.GetByID(ctx, cmd.EventID)
	if err != nil {
		return nil, fmt.Errorf("register_participant: %w", err)
	}

	p, err := e.Register(cmd.UserEmail, cmd.UserName)
	if err != nil {
		switch {
		case errors.Is(err, event.ErrAlreadyRegistered):
			return nil, shared.ErrAlreadyRegistered
		case errors.Is(err, event.ErrEventFull):
			return nil, shared.ErrEventFull
		default:
			return nil, fmt.Errorf("register_participant: %w", err)
		}
	}

	if err := h.eventRepo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("register_participant: save roster: %w", err)
	}

	total := 0
	reason := fmt.Sprintf("Registered for %s", e.Name)
	if res, err := h.awardPoints.Handle(ctx, AwardPointsCommand{
		UserEmail: cmd.UserEmail,
		EventID:   e.ID,
		PointType: points.TypeRegistration,
		Reason:    reason,
	}); err == nil {
		total += res.Points
	}

	earlyBird := e.DaysUntil(timeutil.Now()) > earlyBirdThresholdDays
	if earlyBird {
		if res, err := h.awardPoints.Handle(ctx, AwardPointsCommand{
			UserEmail: cmd.UserEmail,
			EventID:   e.ID,
			PointType: points.TypeEarlyBird,
			Reason:    fmt.Sprintf("Early registration for %s", e.Name),
		}); err == nil {
			total += res.Points
		}
	}

	h.publish(shared.NewParticipantRegisteredEvent(e.ID, cmd.UserEmail, cmd.UserName, earlyBird, total))

	totalPoints := 0
	if history, err := h.ledger.ListByUser(ctx, cmd.UserEmail); err == nil {
		for _, r := range history {
			totalPoints += r.Points
		}
	}

	return &RegisterParticipantResult{
		EventID:      e.ID,
		EventName:    e.Name,
		UserEmail:    cmd.UserEmail,
		PointsEarned: total,
		TotalPoints:  totalPoints,
		EarlyBird:    earlyBird,
		ChatGroup:    p.ChatGroup,
		RegisteredAt: p.EnrollmentDate,
	}, nil
}

func (h *RegisterParticipantHandler) publish(ev shared.Event) {
	if h.publisher == nil {
		return
	}
	_ = h.publisher.Publish(ev)
}
