package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington-hub/school-events-hub/internal/application/query"
	"github.com/mergington-hub/school-events-hub/internal/domain/event"
	"github.com/mergington-hub/school-events-hub/internal/domain/user"
	"github.com/mergington-hub/school-events-hub/internal/infrastructure/persistence/memory"
)

func saveEvent(t *testing.T, repo event.Repository, id string, date time.Time, status event.Status) {
	t.Helper()
	e, err := event.NewEvent(event.NewEventParams{
		ID:              id,
		Name:            "Chess Club",
		Organizer:       "Dr. Smith",
		OrganizerEmail:  "smith@mergington.edu",
		Date:            date,
		MaxParticipants: 12,
	})
	require.NoError(t, err)
	e.Status = status
	require.NoError(t, repo.Save(context.Background(), e))
}

func TestClosePastEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("closes published events with past dates", func(t *testing.T) {
		repo := memory.NewEventRepository()
		saveEvent(t, repo, "e1", time.Now().AddDate(0, 0, -2), event.StatusPublished)
		saveEvent(t, repo, "e2", time.Now().AddDate(0, 0, 5), event.StatusPublished)

		job := NewClosePastEventsJob(repo, nil)
		require.NoError(t, job.Run(ctx))

		past, err := repo.GetByID(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, event.StatusCompleted, past.Status)

		upcoming, err := repo.GetByID(ctx, "e2")
		require.NoError(t, err)
		assert.Equal(t, event.StatusPublished, upcoming.Status)
	})

	t.Run("same day events stay open", func(t *testing.T) {
		repo := memory.NewEventRepository()
		saveEvent(t, repo, "e1", time.Now(), event.StatusPublished)

		job := NewClosePastEventsJob(repo, nil)
		require.NoError(t, job.Run(ctx))

		e, err := repo.GetByID(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, event.StatusPublished, e.Status)
	})

	t.Run("cancelled events are left alone", func(t *testing.T) {
		repo := memory.NewEventRepository()
		saveEvent(t, repo, "e1", time.Now().AddDate(0, 0, -10), event.StatusCancelled)

		job := NewClosePastEventsJob(repo, nil)
		require.NoError(t, job.Run(ctx))

		e, err := repo.GetByID(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, event.StatusCancelled, e.Status)
	})

	t.Run("rerun is a no-op", func(t *testing.T) {
		repo := memory.NewEventRepository()
		saveEvent(t, repo, "e1", time.Now().AddDate(0, 0, -2), event.StatusPublished)

		job := NewClosePastEventsJob(repo, nil)
		require.NoError(t, job.Run(ctx))
		require.NoError(t, job.Run(ctx))

		e, err := repo.GetByID(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, event.StatusCompleted, e.Status)
	})
}

func TestLeaderboardSnapshot(t *testing.T) {
	ctx := context.Background()

	newBoard := func(t *testing.T, emails map[string]int) *query.GetLeaderboardHandler {
		t.Helper()
		users := memory.NewUserRepository()
		for email, pts := range emails {
			u, err := user.NewUser(user.NewUserParams{
				ID:            "u-" + email,
				Name:          "Student",
				Email:         user.Email(email),
				Role:          user.RoleStudent,
				InitialPoints: user.Points(pts),
			})
			require.NoError(t, err)
			require.NoError(t, users.Save(ctx, u))
		}
		return query.NewGetLeaderboardHandler(users, memory.NewLedgerRepository(), memory.NewUserBadgeRepository(), 0)
	}

	t.Run("snapshot succeeds with ranked students", func(t *testing.T) {
		board := newBoard(t, map[string]int{
			"emma@mergington.edu":    120,
			"michael@mergington.edu": 85,
		})
		job := NewLeaderboardSnapshotJob(board, nil)
		assert.NoError(t, job.Run(ctx))
	})

	t.Run("snapshot succeeds with empty board", func(t *testing.T) {
		board := newBoard(t, nil)
		job := NewLeaderboardSnapshotJob(board, nil)
		assert.NoError(t, job.Run(ctx))
	})
}
