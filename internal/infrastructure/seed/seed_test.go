package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington-hub/school-events-hub/internal/domain/user"
	"github.com/mergington-hub/school-events-hub/internal/infrastructure/persistence/memory"
)

func TestRun(t *testing.T) {
	ctx := context.Background()
	users := memory.NewUserRepository()
	events := memory.NewEventRepository()
	badges := memory.NewBadgeCatalogRepository()

	require.NoError(t, Run(ctx, Stores{Users: users, Events: events, Badges: badges}))

	t.Run("loads the badge catalog", func(t *testing.T) {
		catalog, err := badges.List(ctx)
		require.NoError(t, err)
		require.Len(t, catalog, 5)
		assert.Equal(t, "Sports Enthusiast", catalog[0].Name)
		assert.Equal(t, "Perfect Month", catalog[4].Name)
	})

	t.Run("loads organizers and students", func(t *testing.T) {
		all, err := users.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 8)

		smith, err := users.GetByEmail(ctx, "smith@mergington.edu")
		require.NoError(t, err)
		assert.Equal(t, user.RoleOrganizer, smith.Role)
		assert.Equal(t, "Chess Club", smith.Organization)

		emma, err := users.GetByEmail(ctx, "emma@mergington.edu")
		require.NoError(t, err)
		assert.True(t, emma.IsStudent())
		assert.Equal(t, user.Points(120), emma.Points)
	})

	t.Run("loads events with rosters", func(t *testing.T) {
		all, err := events.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)

		chess, err := events.GetByID(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, 12, chess.MaxParticipants)
		assert.True(t, chess.IsRegistered("michael@mergington.edu"))
		assert.True(t, chess.IsRegistered("daniel@mergington.edu"))

		soccer, err := events.GetByID(ctx, "e3")
		require.NoError(t, err)
		assert.Equal(t, "https://chat.whatsapp.com/soccer-team", soccer.ChatGroup)
		assert.Equal(t, "https://chat.whatsapp.com/soccer-team", soccer.FindParticipant("liam@mergington.edu").ChatGroup)
	})

	t.Run("carries per-event participant points", func(t *testing.T) {
		chess, err := events.GetByID(ctx, "e1")
		require.NoError(t, err)
		assert.Equal(t, 10, chess.FindParticipant("michael@mergington.edu").Points)
		assert.Equal(t, 15, chess.FindParticipant("daniel@mergington.edu").Points)

		programming, err := events.GetByID(ctx, "e2")
		require.NoError(t, err)
		assert.Equal(t, 25, programming.FindParticipant("emma@mergington.edu").Points)
		assert.Equal(t, 20, programming.FindParticipant("sophia@mergington.edu").Points)

		soccer, err := events.GetByID(ctx, "e3")
		require.NoError(t, err)
		assert.Equal(t, 30, soccer.FindParticipant("liam@mergington.edu").Points)
		assert.Equal(t, 28, soccer.FindParticipant("noah@mergington.edu").Points)
	})

	t.Run("rerun is idempotent", func(t *testing.T) {
		require.NoError(t, Run(ctx, Stores{Users: users, Events: events, Badges: badges}))

		all, err := users.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 8)

		chess, err := events.GetByID(ctx, "e1")
		require.NoError(t, err)
		assert.Len(t, chess.Participants, 2)
	})
}
