package query

import (
	"context"
	"fmt"
	"time"

	"github.com/mergington-hub/school-events-hub/internal/domain/badge"
	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST BADGES QUERY
// The full badge catalog, independent of any user.
// ══════════════════════════════════════════════════════════════════════════════

// ListBadgesHandler returns the badge catalog.
type ListBadgesHandler struct {
	catalog badge.CatalogRepository
}

// NewListBadgesHandler creates a new ListBadgesHandler.
func NewListBadgesHandler(catalog badge.CatalogRepository) *ListBadgesHandler {
	return &ListBadgesHandler{catalog: catalog}
}

// Handle executes the list badges query.
func (h *ListBadgesHandler) Handle(ctx context.Context) ([]*badge.Badge, error) {
	badges, err := h.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list_badges: %w", err)
	}
	return badges, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// GET USER BADGES QUERY
// One user's earned badges joined with their catalog entries.
// ══════════════════════════════════════════════════════════════════════════════

// GetUserBadgesQuery identifies the user to look up.
type GetUserBadgesQuery struct {
	// UserEmail is whose badges to fetch.
	UserEmail string
}

// EarnedBadge is a catalog entry joined with its assignment details.
type EarnedBadge struct {
	// Badge is the catalog entry.
	Badge badge.Badge

	// EarnedAt is when the user earned it.
	EarnedAt time.Time

	// Level is the earned tier.
	Level int
}

// GetUserBadgesHandler handles the GetUserBadgesQuery.
type GetUserBadgesHandler struct {
	catalog    badge.CatalogRepository
	userBadges badge.UserBadgeRepository
}

// NewGetUserBadgesHandler creates a new GetUserBadgesHandler.
func NewGetUserBadgesHandler(
	catalog badge.CatalogRepository,
	userBadges badge.UserBadgeRepository,
) *GetUserBadgesHandler {
	return &GetUserBadgesHandler{
		catalog:    catalog,
		userBadges: userBadges,
	}
}

// Handle executes the get user badges query. Users without any
// badges, including emails no profile exists for, get an empty list.
func (h *GetUserBadgesHandler) Handle(ctx context.Context, q GetUserBadgesQuery) ([]EarnedBadge, error) {
	if q.UserEmail == "" {
		return nil, fmt.Errorf("get_user_badges: user_email is required")
	}

	assignments, err := h.userBadges.ListByUser(ctx, q.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("get_user_badges: %w", err)
	}

	earned := make([]EarnedBadge, 0, len(assignments))
	for _, ub := range assignments {
		b, err := h.catalog.GetByID(ctx, ub.BadgeID)
		if err != nil {
			// Assignments pointing at retired catalog entries are skipped
			if shared.IsNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("get_user_badges: %w", err)
		}

		earned = append(earned, EarnedBadge{
			Badge:    *b,
			EarnedAt: ub.EarnedAt,
			Level:    ub.Level,
		})
	}
	return earned, nil
}
