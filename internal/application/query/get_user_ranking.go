package query

import (
	"context"
	"fmt"

	"github.com/mergington-hub/school-events-hub/internal/domain/badge"
	"github.com/mergington-hub/school-events-hub/internal/domain/leaderboard"
	"github.com/mergington-hub/school-events-hub/internal/domain/points"
	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
)

// pointHistoryLimit caps the history shown on a personal ranking.
const pointHistoryLimit = 10

// ══════════════════════════════════════════════════════════════════════════════
// GET USER RANKING QUERY
// One student's place on the full board, plus their recent point
// history and earned badges.
// ══════════════════════════════════════════════════════════════════════════════

// GetUserRankingQuery identifies the student to look up.
type GetUserRankingQuery struct {
	// UserEmail is whose ranking to fetch.
	UserEmail string
}

// GetUserRankingResult contains one student's ranking details.
type GetUserRankingResult struct {
	// Entry is the student's row from the full standings.
	Entry leaderboard.Entry

	// History holds the latest ledger entries, newest first.
	History []points.Record

	// Badges are the student's earned badges in earn order.
	Badges []badge.UserBadge
}

// GetUserRankingHandler handles the GetUserRankingQuery.
type GetUserRankingHandler struct {
	leaderboard *GetLeaderboardHandler
	ledger      points.Ledger
	userBadges  badge.UserBadgeRepository
}

// NewGetUserRankingHandler creates a new GetUserRankingHandler.
func NewGetUserRankingHandler(
	leaderboardHandler *GetLeaderboardHandler,
	ledger points.Ledger,
	userBadges badge.UserBadgeRepository,
) *GetUserRankingHandler {
	return &GetUserRankingHandler{
		leaderboard: leaderboardHandler,
		ledger:      ledger,
		userBadges:  userBadges,
	}
}

// Handle executes the get user ranking query.
func (h *GetUserRankingHandler) Handle(ctx context.Context, q GetUserRankingQuery) (*GetUserRankingResult, error) {
	if q.UserEmail == "" {
		return nil, fmt.Errorf("get_user_ranking: user_email is required")
	}

	// The rank must agree with the public board, so it comes from the
	// same full standings rather than a separate count.
	ranking, err := h.leaderboard.buildRanking(ctx)
	if err != nil {
		return nil, fmt.Errorf("get_user_ranking: %w", err)
	}

	entry, ok := ranking.Find(q.UserEmail)
	if !ok {
		return nil, shared.ErrNotRanked
	}

	history, err := h.ledger.ListByUser(ctx, q.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("get_user_ranking: list history: %w", err)
	}
	if len(history) > pointHistoryLimit {
		history = history[:pointHistoryLimit]
	}

	badges, err := h.userBadges.ListByUser(ctx, q.UserEmail)
	if err != nil {
		return nil, fmt.Errorf("get_user_ranking: list badges: %w", err)
	}

	return &GetUserRankingResult{
		Entry:   entry,
		History: history,
		Badges:  badges,
	}, nil
}
