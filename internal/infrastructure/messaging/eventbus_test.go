package messaging

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington-hub/school-events-hub/internal/domain/shared"
)

func newSyncBus() *InMemoryEventBus {
	return NewInMemoryEventBus(InMemoryEventBusConfig{
		AsyncMode:     false,
		EnableMetrics: true,
	})
}

func TestInMemoryEventBusSubscribe(t *testing.T) {
	bus := newSyncBus()
	defer bus.Close()

	t.Run("delivers to type subscribers", func(t *testing.T) {
		var got shared.Event
		err := bus.Subscribe(shared.EventPointsAwarded, func(e shared.Event) error {
			got = e
			return nil
		})
		require.NoError(t, err)

		ev := shared.NewPointsAwardedEvent("r1", "emma@mergington.edu", "e1", "attendance", 10, "Showed up")
		require.NoError(t, bus.Publish(ev))

		require.NotNil(t, got)
		assert.Equal(t, shared.EventPointsAwarded, got.EventType())
	})

	t.Run("does not deliver other types", func(t *testing.T) {
		calls := 0
		err := bus.Subscribe(shared.EventBadgeEarned, func(shared.Event) error {
			calls++
			return nil
		})
		require.NoError(t, err)

		ev := shared.NewPointsAwardedEvent("r2", "emma@mergington.edu", "e1", "attendance", 10, "")
		require.NoError(t, bus.Publish(ev))
		assert.Zero(t, calls)
	})

	t.Run("rejects nil handler", func(t *testing.T) {
		assert.Error(t, bus.Subscribe(shared.EventPointsAwarded, nil))
	})
}

func TestInMemoryEventBusSubscribeAll(t *testing.T) {
	bus := newSyncBus()
	defer bus.Close()

	var types []shared.EventType
	require.NoError(t, bus.SubscribeAll(func(e shared.Event) error {
		types = append(types, e.EventType())
		return nil
	}))

	require.NoError(t, bus.Publish(shared.NewPointsAwardedEvent("r1", "a@mergington.edu", "e1", "attendance", 10, "")))
	require.NoError(t, bus.Publish(shared.NewBadgeEarnedEvent("a@mergington.edu", "b4", 1)))

	assert.Equal(t, []shared.EventType{shared.EventPointsAwarded, shared.EventBadgeEarned}, types)
}

func TestInMemoryEventBusAsync(t *testing.T) {
	bus := NewInMemoryEventBus(InMemoryEventBusConfig{
		AsyncMode:      true,
		WorkerPoolSize: 4,
	})

	var mu sync.Mutex
	seen := 0
	require.NoError(t, bus.SubscribeAll(func(shared.Event) error {
		mu.Lock()
		seen++
		mu.Unlock()
		return nil
	}))

	for i := 0; i < 20; i++ {
		require.NoError(t, bus.Publish(shared.NewBadgeEarnedEvent("a@mergington.edu", "b3", 1)))
	}

	// Close waits for in-flight handlers
	require.NoError(t, bus.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 20, seen)
}

func TestInMemoryEventBusClosed(t *testing.T) {
	bus := newSyncBus()
	require.NoError(t, bus.Close())

	assert.ErrorIs(t, bus.Publish(shared.NewBadgeEarnedEvent("a@mergington.edu", "b3", 1)), ErrEventBusClosed)
	assert.ErrorIs(t, bus.Subscribe(shared.EventBadgeEarned, func(shared.Event) error { return nil }), ErrEventBusClosed)

	// Closing twice is fine
	assert.NoError(t, bus.Close())
}

func TestEventBusMetrics(t *testing.T) {
	bus := newSyncBus()
	defer bus.Close()

	require.NoError(t, bus.Subscribe(shared.EventPointsAwarded, func(shared.Event) error {
		return nil
	}))
	require.NoError(t, bus.Subscribe(shared.EventPointsAwarded, func(shared.Event) error {
		return errors.New("boom")
	}))

	require.NoError(t, bus.Publish(shared.NewPointsAwardedEvent("r1", "a@mergington.edu", "e1", "attendance", 10, "")))

	snap := bus.Metrics().Snapshot()
	assert.Equal(t, int64(1), snap.TotalPublished)
	assert.Equal(t, int64(2), snap.TotalHandlerExecs)
	assert.InDelta(t, 0.5, snap.HandlerSuccessRate, 0.001)
	assert.False(t, snap.LastReset.After(time.Now()))
}
