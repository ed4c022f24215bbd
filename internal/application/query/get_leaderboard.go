// Package query contains read operations (CQRS - Queries).
package query

import (
	"context"
	"fmt"

	"github.com/mergington-hub/school-events-hub/internal/domain/badge"
	"github.com/mergington-hub/school-events-hub/internal/domain/leaderboard"
	"github.com/mergington-hub/school-events-hub/internal/domain/points"
	"github.com/mergington-hub/school-events-hub/internal/domain/user"
)

// DefaultLeaderboardLimit applies when the handler is constructed
// without a configured default.
const DefaultLeaderboardLimit = 50

// ══════════════════════════════════════════════════════════════════════════════
// GET LEADERBOARD QUERY
// Builds the standings from the cached point totals. Students only;
// organizers and admins never appear.
// ══════════════════════════════════════════════════════════════════════════════

// GetLeaderboardQuery contains the parameters for the standings.
type GetLeaderboardQuery struct {
	// Limit caps the returned board. Zero means the default.
	Limit int
}

// GetLeaderboardResult contains the standings.
type GetLeaderboardResult struct {
	// Entries are the top rows in rank order.
	Entries []leaderboard.Entry

	// TotalRanked is how many students the full board holds.
	TotalRanked int
}

// GetLeaderboardHandler handles the GetLeaderboardQuery.
type GetLeaderboardHandler struct {
	userRepo     user.Repository
	ledger       points.Ledger
	userBadges   badge.UserBadgeRepository
	defaultLimit int
}

// NewGetLeaderboardHandler creates a new GetLeaderboardHandler.
// defaultLimit caps queries that do not pick a limit themselves;
// non-positive values fall back to DefaultLeaderboardLimit.
func NewGetLeaderboardHandler(
	userRepo user.Repository,
	ledger points.Ledger,
	userBadges badge.UserBadgeRepository,
	defaultLimit int,
) *GetLeaderboardHandler {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLeaderboardLimit
	}
	return &GetLeaderboardHandler{
		userRepo:     userRepo,
		ledger:       ledger,
		userBadges:   userBadges,
		defaultLimit: defaultLimit,
	}
}

// Handle executes the get leaderboard query.
func (h *GetLeaderboardHandler) Handle(ctx context.Context, q GetLeaderboardQuery) (*GetLeaderboardResult, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = h.defaultLimit
	}

	ranking, err := h.buildRanking(ctx)
	if err != nil {
		return nil, fmt.Errorf("get_leaderboard: %w", err)
	}

	return &GetLeaderboardResult{
		Entries:     ranking.Top(limit),
		TotalRanked: ranking.Len(),
	}, nil
}

// buildRanking assembles the full standings from every student's
// cached total, badge count and latest ledger entry.
func (h *GetLeaderboardHandler) buildRanking(ctx context.Context) (*leaderboard.Ranking, error) {
	users, err := h.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	rows := make([]leaderboard.Entry, 0, len(users))
	for _, u := range users {
		if !u.IsStudent() {
			continue
		}

		badgesCount, err := h.userBadges.CountByUser(ctx, u.Email.String())
		if err != nil {
			return nil, fmt.Errorf("count badges for %s: %w", u.Email, err)
		}

		rows = append(rows, leaderboard.Entry{
			Email:          u.Email.String(),
			Name:           u.Name,
			TotalPoints:    int(u.Points),
			BadgesCount:    badgesCount,
			RecentActivity: h.recentActivity(ctx, u.Email.String()),
		})
	}

	return leaderboard.NewRanking(rows), nil
}

// recentActivity describes the latest award, or the sentinel when the
// ledger holds nothing for the email.
func (h *GetLeaderboardHandler) recentActivity(ctx context.Context, email string) string {
	history, err := h.ledger.ListByUser(ctx, email)
	if err != nil || len(history) == 0 {
		return leaderboard.NoRecentActivity
	}
	latest := history[0]
	return fmt.Sprintf("Earned %d points for %s", latest.Points, latest.Reason)
}
