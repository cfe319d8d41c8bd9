package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/services"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	mu        sync.Mutex
	published []uuid.UUID
	failing   atomic.Bool
}

func (p *fakePublisher) PublishGrantEvent(_ context.Context, event business.GrantEvent) error {
	if p.failing.Load() {
		return errors.New("queue unavailable")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.published = append(p.published, event.ID)
	return nil
}

func (p *fakePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.published)
}

func newEvent() business.GrantEvent {
	return business.GrantEvent{ID: uuid.New(), Type: business.GrantEventMessagesBuilt}
}

func TestEventDispatcher_Publishes(t *testing.T) {
	publisher := &fakePublisher{}
	dispatcher := services.NewEventDispatcher(publisher, services.EventDispatcherConfig{WorkerCount: 2})
	dispatcher.Start()
	defer dispatcher.Stop()

	for i := 0; i < 5; i++ {
		require.NoError(t, dispatcher.PublishGrantEvent(context.Background(), newEvent()))
	}

	assert.Eventually(t, func() bool { return publisher.count() == 5 }, time.Second, 5*time.Millisecond)
	assert.False(t, dispatcher.CircuitOpen())
	assert.Zero(t, dispatcher.Pending())
}

func TestEventDispatcher_CircuitBreaker(t *testing.T) {
	publisher := &fakePublisher{}
	publisher.failing.Store(true)

	dispatcher := services.NewEventDispatcher(publisher, services.EventDispatcherConfig{
		WorkerCount:      1,
		FailureThreshold: 2,
		ResetTimeout:     50 * time.Millisecond,
		CheckInterval:    10 * time.Millisecond,
	})
	dispatcher.Start()
	defer dispatcher.Stop()

	for i := 0; i < 3; i++ {
		require.NoError(t, dispatcher.PublishGrantEvent(context.Background(), newEvent()))
	}

	require.Eventually(t, func() bool {
		return dispatcher.CircuitOpen() && dispatcher.Pending() == 3
	}, time.Second, 5*time.Millisecond)
	assert.Zero(t, publisher.count())

	publisher.failing.Store(false)

	assert.Eventually(t, func() bool {
		return publisher.count() == 3 && dispatcher.Pending() == 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.False(t, dispatcher.CircuitOpen())
}

func TestEventDispatcher_QueueFull(t *testing.T) {
	dispatcher := services.NewEventDispatcher(&fakePublisher{}, services.EventDispatcherConfig{
		BufferSize:     1,
		EnqueueTimeout: 10 * time.Millisecond,
	})

	require.NoError(t, dispatcher.PublishGrantEvent(context.Background(), newEvent()))
	assert.ErrorIs(t, dispatcher.PublishGrantEvent(context.Background(), newEvent()), services.ErrEventQueueFull)
}

func TestEventDispatcher_StopDrainsBuffer(t *testing.T) {
	publisher := &fakePublisher{}
	dispatcher := services.NewEventDispatcher(publisher, services.EventDispatcherConfig{BufferSize: 10})

	for i := 0; i < 4; i++ {
		require.NoError(t, dispatcher.PublishGrantEvent(context.Background(), newEvent()))
	}

	dispatcher.Start()
	dispatcher.Stop()

	assert.Equal(t, 4, publisher.count())
	assert.ErrorIs(t, dispatcher.PublishGrantEvent(context.Background(), newEvent()), services.ErrDispatcherStopped)
}

func TestEventDispatcher_PendingIsBounded(t *testing.T) {
	publisher := &fakePublisher{}
	publisher.failing.Store(true)

	dispatcher := services.NewEventDispatcher(publisher, services.EventDispatcherConfig{
		WorkerCount:      1,
		FailureThreshold: 1,
		MaxPending:       2,
		ResetTimeout:     time.Hour,
	})
	dispatcher.Start()
	defer dispatcher.Stop()

	require.NoError(t, dispatcher.PublishGrantEvent(context.Background(), newEvent()))
	require.Eventually(t, dispatcher.CircuitOpen, time.Second, 5*time.Millisecond)

	for i := 0; i < 5; i++ {
		require.NoError(t, dispatcher.PublishGrantEvent(context.Background(), newEvent()))
	}
	assert.Equal(t, 2, dispatcher.Pending())
}

func TestEventDispatcher_StopRacingPublishers(t *testing.T) {
	for round := 0; round < 20; round++ {
		publisher := &fakePublisher{}
		dispatcher := services.NewEventDispatcher(publisher, services.EventDispatcherConfig{
			WorkerCount: 2,
			BufferSize:  64,
		})
		dispatcher.Start()

		var accepted atomic.Int64
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 20; j++ {
					err := dispatcher.PublishGrantEvent(context.Background(), newEvent())
					if err == nil {
						accepted.Add(1)
						continue
					}
					assert.ErrorIs(t, err, services.ErrDispatcherStopped)
					return
				}
			}()
		}

		dispatcher.Stop()
		wg.Wait()

		assert.Equal(t, int(accepted.Load()), publisher.count(), "round %d", round)
	}
}
