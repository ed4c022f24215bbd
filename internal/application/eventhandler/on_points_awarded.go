// Package eventhandler contains subscribers for domain events.
package eventhandler

import (
	"context"
	"fmt"

	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
	"github.com/mergington-hub/school-events-hub/internal/domain/user"
	"github.com/mergington-hub/school-events-hub/pkg/logger"
)

// ═══════════════════════════════════════════════════════════════════════════
// ON POINTS AWARDED HANDLER
// Reacts to every ledger append. Logs the award and announces point
// milestones when a user's cached total crosses one of the configured
// thresholds.
// ═══════════════════════════════════════════════════════════════════════════

// PointsAwardedConfig contains the handler configuration.
type PointsAwardedConfig struct {
	// PointMilestones are cumulative totals worth announcing.
	PointMilestones []int
}

// DefaultPointsAwardedConfig returns the default configuration.
func DefaultPointsAwardedConfig() PointsAwardedConfig {
	return PointsAwardedConfig{
		PointMilestones: []int{100, 250, 500, 1000},
	}
}

// OnPointsAwardedHandler handles the points.awarded event.
type OnPointsAwardedHandler struct {
	userRepo user.Repository
	log      *logger.Logger
	config   PointsAwardedConfig
}

// NewOnPointsAwardedHandler creates a new points.awarded subscriber.
func NewOnPointsAwardedHandler(userRepo user.Repository, log *logger.Logger, config PointsAwardedConfig) *OnPointsAwardedHandler {
	return &OnPointsAwardedHandler{
		userRepo: userRepo,
		log:      log.With(logger.Component("eventhandler")),
		config:   config,
	}
}

// Handle processes one points.awarded event.
func (h *OnPointsAwardedHandler) Handle(ev shared.Event) error {
	awarded, ok := ev.(shared.PointsAwardedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %s", ev.EventType())
	}

	h.log.Info("points awarded",
		logger.Email(awarded.UserEmail),
		logger.EventID(awarded.EventID),
		logger.PointsAmount(awarded.Points),
		logger.PointType(awarded.PointType),
	)

	h.announceMilestone(awarded)
	return nil
}

// announceMilestone logs when this award pushed the user's total across
// a configured threshold. The lookup uses the cached total, which the
// award path updates before publishing.
func (h *OnPointsAwardedHandler) announceMilestone(awarded shared.PointsAwardedEvent) {
	u, err := h.userRepo.GetByEmail(context.Background(), user.Email(awarded.UserEmail))
	if err != nil {
		// Ledger entries may reference emails without a user record.
		return
	}

	total := int(u.Points)
	before := total - awarded.Points
	for _, m := range h.config.PointMilestones {
		if total >= m && before < m {
			h.log.Info("point milestone reached",
				logger.Email(awarded.UserEmail),
				logger.Int("milestone", m),
				logger.Int("total_points", total),
			)
			return
		}
	}
}
