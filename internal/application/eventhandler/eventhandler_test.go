package eventhandler

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington-hub/school-events-hub/internal/domain/badge"
	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
	"github.com/mergington-hub/school-events-hub/internal/domain/user"
	"github.com/mergington-hub/school-events-hub/internal/infrastructure/persistence/memory"
	"github.com/mergington-hub/school-events-hub/pkg/logger"
)

func newCaptureLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.New(logger.Options{Output: &buf, Level: logger.LevelDebug}), &buf
}

func addUser(t *testing.T, repo user.Repository, email string, pts int) {
	t.Helper()
	u, err := user.NewUser(user.NewUserParams{
		ID:            "u-" + email,
		Email:         user.Email(email),
		Name:          "Test User",
		Role:          user.RoleStudent,
		InitialPoints: user.Points(pts),
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), u))
}

func TestOnPointsAwarded(t *testing.T) {
	t.Run("logs award", func(t *testing.T) {
		users := memory.NewUserRepository()
		addUser(t, users, "michael@mergington.edu", 50)
		log, buf := newCaptureLogger()
		h := NewOnPointsAwardedHandler(users, log, DefaultPointsAwardedConfig())

		ev := shared.NewPointsAwardedEvent("r1", "michael@mergington.edu", "e1", "attendance", 10, "Attended Chess Club")
		require.NoError(t, h.Handle(ev))

		assert.Contains(t, buf.String(), "points awarded")
		assert.Contains(t, buf.String(), "michael@mergington.edu")
	})

	t.Run("announces crossed milestone", func(t *testing.T) {
		users := memory.NewUserRepository()
		// Cached total already includes the award being handled.
		addUser(t, users, "emma@mergington.edu", 105)
		log, buf := newCaptureLogger()
		h := NewOnPointsAwardedHandler(users, log, DefaultPointsAwardedConfig())

		ev := shared.NewPointsAwardedEvent("r1", "emma@mergington.edu", "e1", "completion", 15, "Completed Chess Club")
		require.NoError(t, h.Handle(ev))

		assert.Contains(t, buf.String(), "point milestone reached")
	})

	t.Run("no milestone when total stays below threshold", func(t *testing.T) {
		users := memory.NewUserRepository()
		addUser(t, users, "liam@mergington.edu", 60)
		log, buf := newCaptureLogger()
		h := NewOnPointsAwardedHandler(users, log, DefaultPointsAwardedConfig())

		ev := shared.NewPointsAwardedEvent("r1", "liam@mergington.edu", "e1", "attendance", 10, "Attended Soccer Team")
		require.NoError(t, h.Handle(ev))

		assert.NotContains(t, buf.String(), "point milestone reached")
	})

	t.Run("unknown user is ignored", func(t *testing.T) {
		users := memory.NewUserRepository()
		log, buf := newCaptureLogger()
		h := NewOnPointsAwardedHandler(users, log, DefaultPointsAwardedConfig())

		ev := shared.NewPointsAwardedEvent("r1", "ghost@mergington.edu", "e1", "attendance", 10, "Attended Chess Club")
		require.NoError(t, h.Handle(ev))

		assert.Contains(t, buf.String(), "points awarded")
		assert.NotContains(t, buf.String(), "point milestone reached")
	})

	t.Run("rejects other event types", func(t *testing.T) {
		users := memory.NewUserRepository()
		log, _ := newCaptureLogger()
		h := NewOnPointsAwardedHandler(users, log, DefaultPointsAwardedConfig())

		err := h.Handle(shared.NewBadgeEarnedEvent("emma@mergington.edu", badge.IDEarlyBird, 1))
		assert.Error(t, err)
	})
}

func TestOnBadgeEarned(t *testing.T) {
	t.Run("resolves catalog name and collection size", func(t *testing.T) {
		catalog := memory.NewBadgeCatalogRepository()
		require.NoError(t, catalog.Save(context.Background(), &badge.Badge{
			ID:   badge.IDEventExplorer,
			Name: "Event Explorer",
		}))
		userBadges := memory.NewUserBadgeRepository()
		require.NoError(t, userBadges.Award(context.Background(),
			badge.NewUserBadge("emma@mergington.edu", badge.IDEventExplorer)))
		log, buf := newCaptureLogger()
		h := NewOnBadgeEarnedHandler(catalog, userBadges, log)

		ev := shared.NewBadgeEarnedEvent("emma@mergington.edu", badge.IDEventExplorer, 1)
		require.NoError(t, h.Handle(ev))

		assert.Contains(t, buf.String(), "badge earned")
		assert.Contains(t, buf.String(), "Event Explorer")
	})

	t.Run("falls back to badge id for retired catalog entries", func(t *testing.T) {
		catalog := memory.NewBadgeCatalogRepository()
		userBadges := memory.NewUserBadgeRepository()
		log, buf := newCaptureLogger()
		h := NewOnBadgeEarnedHandler(catalog, userBadges, log)

		ev := shared.NewBadgeEarnedEvent("emma@mergington.edu", "b99", 1)
		require.NoError(t, h.Handle(ev))

		assert.Contains(t, buf.String(), "b99")
	})
}

func TestAuditHandler(t *testing.T) {
	log, buf := newCaptureLogger()
	h := NewAuditHandler(log)

	require.NoError(t, h(shared.NewParticipantRegisteredEvent("e1", "emma@mergington.edu", "Emma Davis", true, 10)))

	assert.Contains(t, buf.String(), "participant.registered")
	assert.Contains(t, buf.String(), "emma@mergington.edu")
}
