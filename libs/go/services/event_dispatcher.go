package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/interfaces"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"

	"go.uber.org/zap"
)

var (
	ErrDispatcherStopped = errors.New("event dispatcher is stopped")
	ErrEventQueueFull    = errors.New("grant event queue is full, try again later")
)

// EventDispatcherConfig configures the event dispatcher. Zero values fall back
// to defaults.
type EventDispatcherConfig struct {
	WorkerCount      int
	BufferSize       int
	FailureThreshold int
	MaxPending       int
	ResetTimeout     time.Duration
	CheckInterval    time.Duration
	EnqueueTimeout   time.Duration
	PublishTimeout   time.Duration
}

func (c EventDispatcherConfig) withDefaults() EventDispatcherConfig {
	if c.WorkerCount <= 0 {
		c.WorkerCount = 2
	}
	if c.BufferSize <= 0 {
		c.BufferSize = 100
	}
	if c.FailureThreshold <= 0 {
		c.FailureThreshold = 3
	}
	if c.MaxPending <= 0 {
		c.MaxPending = 1000
	}
	if c.ResetTimeout <= 0 {
		c.ResetTimeout = time.Minute
	}
	if c.CheckInterval <= 0 {
		c.CheckInterval = 10 * time.Second
	}
	if c.EnqueueTimeout <= 0 {
		c.EnqueueTimeout = time.Second
	}
	if c.PublishTimeout <= 0 {
		c.PublishTimeout = 10 * time.Second
	}
	return c
}

// EventDispatcher publishes grant events from a worker pool so that requests
// never wait on the queue. Events that fail to publish are kept and retried
// once ResetTimeout has passed without failures. After FailureThreshold
// consecutive failures the circuit opens and new events go straight to the
// pending list.
type EventDispatcher struct {
	events    chan business.GrantEvent
	publisher interfaces.EventPublisher
	config    EventDispatcherConfig
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	logger    *zap.Logger

	// sendMu is held for reading across every enqueue and for writing while
	// Stop marks the dispatcher stopped, so no event lands after the drain.
	sendMu  sync.RWMutex
	stopped bool

	mu                  sync.Mutex
	circuitOpen         bool
	consecutiveFailures int
	lastFailureTime     time.Time
	pending             []business.GrantEvent
}

// NewEventDispatcher creates a dispatcher in front of publisher. Call Start
// before publishing.
func NewEventDispatcher(publisher interfaces.EventPublisher, config EventDispatcherConfig) *EventDispatcher {
	config = config.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())

	return &EventDispatcher{
		events:    make(chan business.GrantEvent, config.BufferSize),
		publisher: publisher,
		config:    config,
		ctx:       ctx,
		cancel:    cancel,
		logger:    logger.ForComponent(logger.ComponentQueue),
		pending:   make([]business.GrantEvent, 0),
	}
}

// Start starts the workers and the retry monitor
func (d *EventDispatcher) Start() {
	d.logger.Info("Starting grant event dispatcher", zap.Int("worker_count", d.config.WorkerCount))

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.monitor()
	}()

	for i := 0; i < d.config.WorkerCount; i++ {
		workerID := i
		d.wg.Add(1)

		go func() {
			defer d.wg.Done()
			d.logger.Debug("Event worker started", zap.Int("worker_id", workerID))

			for {
				select {
				case <-d.ctx.Done():
					d.drain()
					d.logger.Debug("Event worker stopped", zap.Int("worker_id", workerID))
					return
				case event := <-d.events:
					_ = d.process(event)
				}
			}
		}()
	}
}

// Stop stops the workers after publishing whatever is still buffered
func (d *EventDispatcher) Stop() {
	d.logger.Info("Stopping grant event dispatcher")

	d.sendMu.Lock()
	d.stopped = true
	d.sendMu.Unlock()

	d.cancel()
	d.wg.Wait()

	if pending := d.Pending(); pending > 0 {
		d.logger.Warn("Grant events left unpublished", zap.Int("count", pending))
	}
	d.logger.Info("Grant event dispatcher stopped")
}

// PublishGrantEvent queues event for publishing
func (d *EventDispatcher) PublishGrantEvent(ctx context.Context, event business.GrantEvent) error {
	d.sendMu.RLock()
	defer d.sendMu.RUnlock()

	if d.stopped {
		return ErrDispatcherStopped
	}

	d.mu.Lock()
	if d.circuitOpen {
		d.storePendingLocked(event)
		d.mu.Unlock()
		d.logger.Debug("Circuit open, holding grant event", zap.String("event_id", event.ID.String()))
		return nil
	}
	d.mu.Unlock()

	select {
	case d.events <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d.config.EnqueueTimeout):
		return ErrEventQueueFull
	}
}

// Pending returns the number of events waiting for a retry
func (d *EventDispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// CircuitOpen reports whether publishing is paused
func (d *EventDispatcher) CircuitOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.circuitOpen
}

func (d *EventDispatcher) process(event business.GrantEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), d.config.PublishTimeout)
	defer cancel()

	err := d.publisher.PublishGrantEvent(ctx, event)

	d.mu.Lock()
	defer d.mu.Unlock()

	if err != nil {
		d.consecutiveFailures++
		d.lastFailureTime = time.Now()
		d.logger.Warn("Failed to publish grant event",
			zap.String("event_id", event.ID.String()),
			zap.Int("consecutive_failures", d.consecutiveFailures),
			zap.Error(err),
		)
		if d.consecutiveFailures >= d.config.FailureThreshold && !d.circuitOpen {
			d.logger.Warn("Opening circuit breaker due to consecutive failures",
				zap.Int("failure_count", d.consecutiveFailures),
				zap.Int("threshold", d.config.FailureThreshold),
			)
			d.circuitOpen = true
		}
		d.storePendingLocked(event)
		return err
	}

	if d.consecutiveFailures > 0 {
		d.consecutiveFailures = 0
		d.logger.Info("Grant event publishing recovered")
	}
	return nil
}

// storePendingLocked keeps event for a retry, dropping the oldest event when
// the pending list is full. d.mu must be held.
func (d *EventDispatcher) storePendingLocked(event business.GrantEvent) {
	if len(d.pending) >= d.config.MaxPending {
		dropped := d.pending[0]
		d.pending = d.pending[1:]
		d.logger.Warn("Pending grant events full, dropping oldest",
			zap.String("event_id", dropped.ID.String()),
		)
	}
	d.pending = append(d.pending, event)
}

// monitor retries pending events once no failure has happened for
// ResetTimeout, closing the circuit if it was open.
func (d *EventDispatcher) monitor() {
	ticker := time.NewTicker(d.config.CheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-d.ctx.Done():
			return
		case <-ticker.C:
			d.mu.Lock()
			if len(d.pending) == 0 || time.Since(d.lastFailureTime) < d.config.ResetTimeout {
				d.mu.Unlock()
				continue
			}

			if d.circuitOpen {
				d.logger.Info("Resetting circuit breaker")
			}
			d.circuitOpen = false
			d.consecutiveFailures = 0
			retry := d.pending
			d.pending = make([]business.GrantEvent, 0)
			d.mu.Unlock()

			for _, event := range retry {
				if err := d.PublishGrantEvent(d.ctx, event); err != nil {
					d.mu.Lock()
					d.storePendingLocked(event)
					d.mu.Unlock()
				}
			}
		}
	}
}

// drain publishes events still buffered when the dispatcher stops
func (d *EventDispatcher) drain() {
	for {
		select {
		case event := <-d.events:
			_ = d.process(event)
		default:
			return
		}
	}
}
