package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mergington-hub/school-events-hub/internal/application/query"
)

// ══════════════════════════════════════════════════════════════════════════════
// LEADERBOARD SNAPSHOT JOB
// ══════════════════════════════════════════════════════════════════════════════

// LeaderboardSnapshotJob logs a periodic snapshot of the top of the
// leaderboard. The snapshot line doubles as an audit trail of standings
// over time, since the in-memory board keeps no history of its own.
type LeaderboardSnapshotJob struct {
	board  *query.GetLeaderboardHandler
	logger *slog.Logger

	// TopN is how many entries the snapshot covers.
	TopN int
}

// NewLeaderboardSnapshotJob creates a new leaderboard snapshot job.
func NewLeaderboardSnapshotJob(board *query.GetLeaderboardHandler, logger *slog.Logger) *LeaderboardSnapshotJob {
	if logger == nil {
		logger = slog.Default()
	}
	return &LeaderboardSnapshotJob{
		board:  board,
		logger: logger,
		TopN:   10,
	}
}

// Name implements scheduler.Job.
func (j *LeaderboardSnapshotJob) Name() string {
	return "leaderboard_snapshot"
}

// Description implements scheduler.Job.
func (j *LeaderboardSnapshotJob) Description() string {
	return "Logs a periodic snapshot of the top of the leaderboard"
}

// Run implements scheduler.Job.
func (j *LeaderboardSnapshotJob) Run(ctx context.Context) error {
	result, err := j.board.Handle(ctx, query.GetLeaderboardQuery{Limit: j.TopN})
	if err != nil {
		return fmt.Errorf("build leaderboard: %w", err)
	}

	if len(result.Entries) == 0 {
		j.logger.Info("leaderboard snapshot", slog.Int("total_ranked", 0))
		return nil
	}

	leader := result.Entries[0]
	j.logger.Info("leaderboard snapshot",
		slog.Int("total_ranked", result.TotalRanked),
		slog.String("leader", leader.Email),
		slog.Int("leader_points", leader.TotalPoints),
	)

	for _, entry := range result.Entries {
		j.logger.Debug("leaderboard entry",
			slog.String("rank", entry.Rank.String()),
			slog.String("email", entry.Email),
			slog.Int("points", entry.TotalPoints),
		)
	}
	return nil
}
