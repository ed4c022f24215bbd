package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington-hub/school-events-hub/config"
	"github.com/mergington-hub/school-events-hub/internal/application/command"
	"github.com/mergington-hub/school-events-hub/internal/application/query"
	"github.com/mergington-hub/school-events-hub/internal/infrastructure/persistence/memory"
	"github.com/mergington-hub/school-events-hub/internal/infrastructure/seed"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := memory.NewUserRepository()
	events := memory.NewEventRepository()
	ledger := memory.NewLedgerRepository()
	catalog := memory.NewBadgeCatalogRepository()
	userBadges := memory.NewUserBadgeRepository()

	require.NoError(t, seed.Run(context.Background(), seed.Stores{
		Users:  users,
		Events: events,
		Badges: catalog,
	}))

	award := command.NewAwardPointsHandler(ledger, users, userBadges, nil)
	board := query.NewGetLeaderboardHandler(users, ledger, userBadges, 0)

	handlers := &Handlers{
		ListEvents:  query.NewListEventsHandler(events),
		GetEvent:    query.NewGetEventHandler(events),
		Leaderboard: board,
		UserRanking: query.NewGetUserRankingHandler(board, ledger, userBadges),
		ListBadges:  query.NewListBadgesHandler(catalog),
		UserBadges:  query.NewGetUserBadgesHandler(catalog, userBadges),
		Register:    command.NewRegisterParticipantHandler(events, ledger, award, nil),
		Unregister:  command.NewUnregisterParticipantHandler(events, nil),
		Attendance:  command.NewMarkAttendanceHandler(events, award, nil),
		Complete:    command.NewCompleteEventHandler(events, award, nil),
	}

	srv := NewServer(ServerConfig{
		HTTP:     config.HTTPConfig{Port: 8080},
		App:      config.AppConfig{Version: "test", Debug: true},
		Handlers: handlers,
	})
	return srv.Engine()
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthEndpoints(t *testing.T) {
	engine := newTestServer(t)

	w := doJSON(t, engine, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])

	w = doJSON(t, engine, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Mergington High School API", decode(t, w)["name"])
}

func TestEventEndpoints(t *testing.T) {
	t.Run("lists seeded events", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodGet, "/api/v1/events", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.EqualValues(t, 3, body["total"])
	})

	t.Run("returns one event with roster", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodGet, "/api/v1/events/e1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.Equal(t, "Chess Club", body["name"])
		assert.EqualValues(t, 12, body["max_participants"])
		assert.EqualValues(t, 10, body["spots_left"])
	})

	t.Run("unknown event is 404", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodGet, "/api/v1/events/e99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "not_found", decode(t, w)["error"])
	})
}

func TestRegistrationEndpoints(t *testing.T) {
	t.Run("register awards points", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodPost, "/api/v1/events/e1/register", gin.H{
			"email": "noah@mergington.edu",
			"name":  "Noah Brown",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		body := decode(t, w)
		// registration 5 + early bird 5, the event is 10 days out
		assert.EqualValues(t, 10, body["points_earned"])
		assert.Equal(t, true, body["early_bird"])
	})

	t.Run("close event skips the early bird bonus", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodPost, "/api/v1/events/e3/register", gin.H{
			"email": "emma@mergington.edu",
			"name":  "Emma Davis",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		body := decode(t, w)
		assert.EqualValues(t, 5, body["points_earned"])
		assert.Equal(t, false, body["early_bird"])
	})

	t.Run("duplicate registration is 409", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodPost, "/api/v1/events/e1/register", gin.H{
			"email": "michael@mergington.edu",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "conflict", decode(t, w)["error"])
	})

	t.Run("missing email is 400", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodPost, "/api/v1/events/e1/register", gin.H{})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("full event is 409 capacity_exceeded", func(t *testing.T) {
		engine := newTestServer(t)
		// e1 seeds 2 of 12 spots
		for i := 0; i < 10; i++ {
			w := doJSON(t, engine, http.MethodPost, "/api/v1/events/e1/register", gin.H{
				"email": string(rune('a'+i)) + "@mergington.edu",
			})
			require.Equal(t, http.StatusCreated, w.Code)
		}

		w := doJSON(t, engine, http.MethodPost, "/api/v1/events/e1/register", gin.H{
			"email": "late@mergington.edu",
		})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "capacity_exceeded", decode(t, w)["error"])
	})

	t.Run("unregister succeeds even when absent", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodDelete, "/api/v1/events/e1/unregister", gin.H{
			"email": "ghost@mergington.edu",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, false, decode(t, w)["removed"])
	})
}

func TestAttendanceEndpoints(t *testing.T) {
	t.Run("attendance requires registration", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodPost, "/api/v1/events/e1/attendance", gin.H{
			"email": "emma@mergington.edu",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "precondition_failed", decode(t, w)["error"])
	})

	t.Run("attendance and completion award points", func(t *testing.T) {
		engine := newTestServer(t)

		w := doJSON(t, engine, http.MethodPost, "/api/v1/events/e1/attendance", gin.H{
			"email": "michael@mergington.edu",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 10, decode(t, w)["points_earned"])

		w = doJSON(t, engine, http.MethodPost, "/api/v1/events/e1/complete", gin.H{
			"email": "michael@mergington.edu",
		})
		require.Equal(t, http.StatusOK, w.Code)
		assert.EqualValues(t, 15, decode(t, w)["points_earned"])
	})
}

func TestLeaderboardEndpoints(t *testing.T) {
	t.Run("ranks seeded students", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodGet, "/api/v1/leaderboard", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.EqualValues(t, 6, body["total_ranked"])

		entries := body["leaderboard"].([]any)
		require.Len(t, entries, 6)
		top := entries[0].(map[string]any)
		assert.Equal(t, "emma@mergington.edu", top["user_email"])
		assert.EqualValues(t, 1, top["rank"])
		assert.EqualValues(t, 120, top["total_points"])
	})

	t.Run("applies the limit", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodGet, "/api/v1/leaderboard?limit=2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		body := decode(t, w)
		assert.Len(t, body["leaderboard"].([]any), 2)
		assert.EqualValues(t, 6, body["total_ranked"])
	})

	t.Run("rejects a bad limit", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodGet, "/api/v1/leaderboard?limit=zero", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("personal ranking for a seeded student", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodGet, "/api/v1/leaderboard/users/emma@mergington.edu", nil)
		require.Equal(t, http.StatusOK, w.Code)

		entry := decode(t, w)["entry"].(map[string]any)
		assert.EqualValues(t, 1, entry["rank"])
	})

	t.Run("organizers are not ranked", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodGet, "/api/v1/leaderboard/users/smith@mergington.edu", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestBadgeEndpoints(t *testing.T) {
	t.Run("lists the catalog", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodGet, "/api/v1/badges", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decode(t, w)["badges"].([]any), 5)
	})

	t.Run("user without badges gets an empty list", func(t *testing.T) {
		engine := newTestServer(t)
		w := doJSON(t, engine, http.MethodGet, "/api/v1/users/emma@mergington.edu/badges", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, decode(t, w)["badges"])
	})
}
