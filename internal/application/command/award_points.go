// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mergington-hub/school-events-hub/internal/domain/badge"
	"github.com/mergington-hub/school-events-hub/internal/domain/points"
	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
	"github.com/mergington-hub/school-events-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// AWARD POINTS COMMAND
// The single write path of the gamification core. Every point a user
// earns flows through here: ledger append, cached total update, badge
// re-check. The award itself is total: unknown point types record a
// zero-value entry and unknown users keep their ledger without a
// cached total.
// ══════════════════════════════════════════════════════════════════════════════

// AwardPointsCommand contains the data for one point award.
type AwardPointsCommand struct {
	// UserEmail is who earns the points.
	UserEmail string

	// EventID is the related event, if any.
	EventID string

	// PointType is the award category.
	PointType points.Type

	// Reason is an optional human-readable explanation. Empty falls
	// back to a generated one.
	Reason string
}

// Validate validates the command.
func (c AwardPointsCommand) Validate() error {
	if c.UserEmail == "" {
		return errors.New("award_points: user_email is required")
	}
	if c.PointType == "" {
		return errors.New("award_points: point_type is required")
	}
	return nil
}

// AwardPointsResult contains the result of a point award.
type AwardPointsResult struct {
	// RecordID is the id of the appended ledger entry.
	RecordID string

	// Points is the awarded amount. Zero for unknown point types.
	Points int

	// BadgesEarned lists badge ids newly granted by this award.
	BadgesEarned []string

	// AwardedAt is when the award happened.
	AwardedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// AwardPointsHandler handles the AwardPointsCommand.
type AwardPointsHandler struct {
	ledger     points.Ledger
	userRepo   user.Repository
	userBadges badge.UserBadgeRepository
	publisher  shared.EventPublisher
}

// NewAwardPointsHandler creates a new AwardPointsHandler.
func NewAwardPointsHandler(
	ledger points.Ledger,
	userRepo user.Repository,
	userBadges badge.UserBadgeRepository,
	publisher shared.EventPublisher,
) *AwardPointsHandler {
	return &AwardPointsHandler{
		ledger:     ledger,
		userRepo:   userRepo,
		userBadges: userBadges,
		publisher:  publisher,
	}
}

// Handle executes the award points command.
func (h *AwardPointsHandler) Handle(ctx context.Context, cmd AwardPointsCommand) (*AwardPointsResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("award_points: validation failed: %w", err)
	}

	// Append to the ledger; the ledger is the source of truth
	record := points.NewRecord(cmd.UserEmail, cmd.EventID, cmd.PointType, cmd.Reason)
	if err := h.ledger.Append(ctx, record); err != nil {
		return nil, fmt.Errorf("award_points: ledger append: %w", err)
	}

	// Keep the cached total in sync; unknown emails are skipped
	if err := h.userRepo.AddPoints(ctx, user.Email(cmd.UserEmail), user.Points(record.Points)); err != nil {
		return nil, fmt.Errorf("award_points: update cached total: %w", err)
	}

	h.publish(shared.NewPointsAwardedEvent(
		record.ID, record.UserEmail, record.EventID,
		string(record.Type), record.Points, record.Reason,
	))

	// Re-check badge rules against the grown history. A failing
	// badge check never undoes the award above.
	earned := h.checkBadges(ctx, cmd.UserEmail)

	return &AwardPointsResult{
		RecordID:     record.ID,
		Points:       record.Points,
		BadgesEarned: earned,
		AwardedAt:    record.AwardedAt,
	}, nil
}

// checkBadges evaluates every badge rule for the user and grants the
// ones newly satisfied. Already held badges stay untouched.
func (h *AwardPointsHandler) checkBadges(ctx context.Context, userEmail string) []string {
	history, err := h.ledger.ListByUser(ctx, userEmail)
	if err != nil {
		return nil
	}

	earned := make([]string, 0)
	for _, rule := range badge.Rules() {
		held, err := h.userBadges.Has(ctx, userEmail, rule.BadgeID)
		if err != nil || held {
			continue
		}
		if !rule.Earned(history) {
			continue
		}

		ub := badge.NewUserBadge(userEmail, rule.BadgeID)
		if err := h.userBadges.Award(ctx, ub); err != nil {
			continue
		}

		earned = append(earned, rule.BadgeID)
		h.publish(shared.NewBadgeEarnedEvent(userEmail, rule.BadgeID, ub.Level))
	}
	return earned
}

func (h *AwardPointsHandler) publish(event shared.Event) {
	if h.publisher == nil {
		return
	}
	// Subscribers are side effects; delivery problems never fail the write
	_ = h.publisher.Publish(event)
}
