// Package hub fans engine state changes out to live subscribers.
//
// Delivery is monotonic per topic: once a subscriber has been handed a
// notification with version v of an experience on a topic, nothing older than
// v for that experience is delivered on that topic. Versions of different
// experiences are unrelated, which matters for attendee topics. Publishers
// never block on subscribers; a subscriber whose buffer is full misses the
// notification, and the next one carries the full refreshed counters.
//
// Sinks are fed from a bounded queue by a single background worker, so a slow
// or unreachable sink never delays the publisher. When the queue is full the
// batch is dropped for the sinks only.
package hub

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const (
	defaultBuffer      = 32
	defaultSinkTimeout = 2 * time.Second
	defaultSinkQueue   = 256
)

// Sink receives every notification the hub accepts, e.g. an external broker.
type Sink interface {
	Deliver(ctx context.Context, n domain.Notification) error
}

type topicState struct {
	// last delivered version per experience
	last map[string]int64
	subs map[*Subscription]struct{}
}

type Hub struct {
	mu     sync.Mutex
	topics map[string]*topicState

	sinks       []Sink
	buffer      int
	sinkTimeout time.Duration
	sinkQueue   int
	logger      logger.Logger

	qmu       sync.Mutex
	queue     chan []domain.Notification
	closed    bool
	drained   chan struct{}
	closeOnce sync.Once
}

type Option func(*Hub)

func WithBuffer(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.buffer = n
		}
	}
}

func WithSink(s Sink) Option {
	return func(h *Hub) { h.sinks = append(h.sinks, s) }
}

func WithSinkTimeout(d time.Duration) Option {
	return func(h *Hub) {
		if d > 0 {
			h.sinkTimeout = d
		}
	}
}

// WithSinkQueue bounds the number of publish batches waiting for the sinks.
func WithSinkQueue(n int) Option {
	return func(h *Hub) {
		if n > 0 {
			h.sinkQueue = n
		}
	}
}

func New(log logger.Logger, opts ...Option) *Hub {
	h := &Hub{
		topics:      make(map[string]*topicState),
		buffer:      defaultBuffer,
		sinkTimeout: defaultSinkTimeout,
		sinkQueue:   defaultSinkQueue,
		logger:      log,
		drained:     make(chan struct{}),
	}
	for _, o := range opts {
		o(h)
	}

	if len(h.sinks) == 0 {
		close(h.drained)
		return h
	}
	h.queue = make(chan []domain.Notification, h.sinkQueue)
	go h.runSinks()
	return h
}

// Close stops accepting work for the sinks and waits until the queued batches
// are delivered or ctx ends. Subscribers are unaffected.
func (h *Hub) Close(ctx context.Context) error {
	h.closeOnce.Do(func() {
		h.qmu.Lock()
		h.closed = true
		if h.queue != nil {
			close(h.queue)
		}
		h.qmu.Unlock()
	})

	select {
	case <-h.drained:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("drain sinks: %w", ctx.Err())
	}
}

type Subscription struct {
	hub    *Hub
	ch     chan domain.Notification
	topics []string
	once   sync.Once
}

// C delivers notifications until Close is called.
func (s *Subscription) C() <-chan domain.Notification {
	return s.ch
}

func (s *Subscription) Topics() []string {
	return s.topics
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s)
		close(s.ch)
	})
}

func (h *Hub) Subscribe(topics ...string) *Subscription {
	sub := &Subscription{
		hub:    h,
		ch:     make(chan domain.Notification, h.buffer),
		topics: topics,
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for _, t := range topics {
		st, ok := h.topics[t]
		if !ok {
			st = &topicState{
				last: make(map[string]int64),
				subs: make(map[*Subscription]struct{}),
			}
			h.topics[t] = st
		}
		st.subs[sub] = struct{}{}
	}
	return sub
}

func (h *Hub) unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, t := range sub.topics {
		st, ok := h.topics[t]
		if !ok {
			continue
		}
		delete(st.subs, sub)
		if len(st.subs) == 0 {
			delete(h.topics, t)
		}
	}
}

func (h *Hub) Publish(_ context.Context, notes ...domain.Notification) {
	accepted := make([]domain.Notification, 0, len(notes))

	h.mu.Lock()
	for _, n := range notes {
		st, ok := h.topics[n.Topic]
		if !ok {
			accepted = append(accepted, n)
			continue
		}
		if last, seen := st.last[n.ExperienceID]; seen && n.Version < last {
			h.logger.Debug("stale notification dropped",
				logger.String("topic", n.Topic),
				logger.Int64("version", n.Version),
				logger.Int64("last", last),
			)
			continue
		}
		st.last[n.ExperienceID] = n.Version
		accepted = append(accepted, n)

		for sub := range st.subs {
			select {
			case sub.ch <- n:
			default:
				h.logger.Warn("subscriber buffer full, notification skipped",
					logger.String("topic", n.Topic),
					logger.Int64("version", n.Version),
				)
			}
		}
	}
	h.mu.Unlock()

	h.enqueueForSinks(accepted)
}

func (h *Hub) enqueueForSinks(notes []domain.Notification) {
	if h.queue == nil || len(notes) == 0 {
		return
	}

	h.qmu.Lock()
	defer h.qmu.Unlock()
	if h.closed {
		return
	}

	select {
	case h.queue <- notes:
	default:
		h.logger.Warn("sink queue full, notifications not exported",
			logger.Int("count", len(notes)),
			logger.String("topic", notes[0].Topic),
		)
	}
}

func (h *Hub) runSinks() {
	defer close(h.drained)
	for notes := range h.queue {
		h.deliverToSinks(notes)
	}
}

func (h *Hub) deliverToSinks(notes []domain.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), h.sinkTimeout)
	defer cancel()

	for _, s := range h.sinks {
		for _, n := range notes {
			if err := s.Deliver(ctx, n); err != nil {
				h.logger.Error("sink delivery failed",
					logger.String("topic", n.Topic),
					logger.String("error", err.Error()),
				)
			}
		}
	}
}
