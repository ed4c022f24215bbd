package badge

import "context"

// CatalogRepository defines read access to the badge catalog.
type CatalogRepository interface {
	// GetByID returns the catalog entry with the given id.
	// Returns shared.ErrBadgeNotFound when the id is unknown.
	GetByID(ctx context.Context, id string) (*Badge, error)

	// List returns the full catalog in stable id order.
	List(ctx context.Context) ([]*Badge, error)

	// Save creates or overwrites a catalog entry.
	Save(ctx context.Context, b *Badge) error
}

// UserBadgeRepository defines the persistence contract for earned
// badges.
type UserBadgeRepository interface {
	// Award stores an assignment. Awarding the same (user, badge)
	// pair twice is a silent no-op; a badge is earned once.
	Award(ctx context.Context, ub UserBadge) error

	// Has reports whether the user already holds the badge.
	Has(ctx context.Context, userEmail, badgeID string) (bool, error)

	// ListByUser returns all badges of one user in earn order.
	ListByUser(ctx context.Context, userEmail string) ([]UserBadge, error)

	// CountByUser returns how many badges the user holds.
	CountByUser(ctx context.Context, userEmail string) (int, error)
}
