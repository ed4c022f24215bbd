// Package badge holds the achievement catalog, the user-badge
// assignments and the rules deciding who earned what.
package badge

import "time"

// Well-known badge identifiers from the seeded catalog. Eligibility
// rules reference the ids they award.
const (
	IDSportsEnthusiast = "b1"
	IDAcademicStar     = "b2"
	IDEventExplorer    = "b3"
	IDEarlyBird        = "b4"
	IDPerfectMonth     = "b5"
)

// Badge is one catalog entry describing an earnable achievement.
type Badge struct {
	// ID - unique identifier.
	ID string

	// Type - machine-readable category ("participation", "academic").
	Type string

	// Name - display title.
	Name string

	// Description - what the badge rewards.
	Description string

	// IconURL - path of the badge artwork.
	IconURL string

	// Requirements - human-readable earning criteria.
	Requirements string
}

// UserBadge is one earned badge of one user. A user holds at most one
// assignment per badge id; re-earning raises nothing.
type UserBadge struct {
	// UserEmail - who earned the badge.
	UserEmail string

	// BadgeID - which catalog entry was earned.
	BadgeID string

	// EarnedAt - when the badge was granted.
	EarnedAt time.Time

	// Level - badge tier. All rules currently grant level 1.
	Level int
}

// NewUserBadge creates a level-1 assignment earned now.
func NewUserBadge(userEmail, badgeID string) UserBadge {
	return UserBadge{
		UserEmail: userEmail,
		BadgeID:   badgeID,
		EarnedAt:  time.Now().UTC(),
		Level:     1,
	}
}
