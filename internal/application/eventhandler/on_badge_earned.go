package eventhandler

import (
	"context"
	"fmt"

	"github.com/mergington-hub/school-events-hub/internal/domain/badge"
	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
	"github.com/mergington-hub/school-events-hub/pkg/logger"
)

// ═══════════════════════════════════════════════════════════════════════════
// ON BADGE EARNED HANDLER
// Reacts to newly earned badges. Resolves the catalog entry for a
// human-readable name and logs the user's collection size.
// ═══════════════════════════════════════════════════════════════════════════

// OnBadgeEarnedHandler handles the badge.earned event.
type OnBadgeEarnedHandler struct {
	catalog    badge.CatalogRepository
	userBadges badge.UserBadgeRepository
	log        *logger.Logger
}

// NewOnBadgeEarnedHandler creates a new badge.earned subscriber.
func NewOnBadgeEarnedHandler(catalog badge.CatalogRepository, userBadges badge.UserBadgeRepository, log *logger.Logger) *OnBadgeEarnedHandler {
	return &OnBadgeEarnedHandler{
		catalog:    catalog,
		userBadges: userBadges,
		log:        log.With(logger.Component("eventhandler")),
	}
}

// Handle processes one badge.earned event.
func (h *OnBadgeEarnedHandler) Handle(ev shared.Event) error {
	earned, ok := ev.(shared.BadgeEarnedEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %s", ev.EventType())
	}

	ctx := context.Background()

	name := earned.BadgeID
	if b, err := h.catalog.GetByID(ctx, earned.BadgeID); err == nil {
		name = b.Name
	}

	count, err := h.userBadges.CountByUser(ctx, earned.UserEmail)
	if err != nil {
		count = 0
	}

	h.log.Info("badge earned",
		logger.Email(earned.UserEmail),
		logger.BadgeID(earned.BadgeID),
		logger.String("badge_name", name),
		logger.Int("collection_size", count),
	)
	return nil
}
