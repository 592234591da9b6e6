package hub

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type recordingSink struct {
	mu    sync.Mutex
	notes []domain.Notification
	err   error
}

func (s *recordingSink) Deliver(_ context.Context, n domain.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append(s.notes, n)
	return s.err
}

func (s *recordingSink) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.notes)
}

func receive(t *testing.T, sub *Subscription) domain.Notification {
	t.Helper()
	select {
	case n := <-sub.C():
		return n
	case <-time.After(time.Second):
		t.Fatal("no notification received")
		return domain.Notification{}
	}
}

func assertEmpty(t *testing.T, sub *Subscription) {
	t.Helper()
	select {
	case n := <-sub.C():
		t.Fatalf("unexpected notification %+v", n)
	default:
	}
}

func TestHub_DeliversToTopicSubscribers(t *testing.T) {
	h := New(newTestLogger(t))
	queue := h.Subscribe("queue/e1")
	defer queue.Close()
	other := h.Subscribe("queue/e2")
	defer other.Close()

	h.Publish(context.Background(), domain.Notification{Topic: "queue/e1", Version: 1, Message: "hi"})

	n := receive(t, queue)
	assert.Equal(t, "hi", n.Message)
	assertEmpty(t, other)
}

func TestHub_DropsStaleVersions(t *testing.T) {
	h := New(newTestLogger(t))
	sub := h.Subscribe("queue/e1")
	defer sub.Close()

	h.Publish(context.Background(), domain.Notification{Topic: "queue/e1", Version: 5})
	h.Publish(context.Background(), domain.Notification{Topic: "queue/e1", Version: 3})
	h.Publish(context.Background(), domain.Notification{Topic: "queue/e1", Version: 5})
	h.Publish(context.Background(), domain.Notification{Topic: "queue/e1", Version: 6})

	assert.Equal(t, int64(5), receive(t, sub).Version)
	assert.Equal(t, int64(5), receive(t, sub).Version)
	assert.Equal(t, int64(6), receive(t, sub).Version)
	assertEmpty(t, sub)
}

func TestHub_MonotonicUnderConcurrentPublishers(t *testing.T) {
	h := New(newTestLogger(t), WithBuffer(1000))
	sub := h.Subscribe("queue/e1")
	defer sub.Close()

	var wg sync.WaitGroup
	for i := 1; i <= 200; i++ {
		wg.Add(1)
		go func(v int64) {
			defer wg.Done()
			h.Publish(context.Background(), domain.Notification{Topic: "queue/e1", Version: v})
		}(int64(i))
	}
	wg.Wait()

	var last int64
	for {
		select {
		case n := <-sub.C():
			require.GreaterOrEqual(t, n.Version, last)
			last = n.Version
		default:
			assert.Equal(t, int64(200), last)
			return
		}
	}
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	h := New(newTestLogger(t), WithBuffer(1))
	sub := h.Subscribe("queue/e1")
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for v := int64(1); v <= 10; v++ {
			h.Publish(context.Background(), domain.Notification{Topic: "queue/e1", Version: v})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}
	assert.Equal(t, int64(1), receive(t, sub).Version)
}

func TestHub_CloseUnsubscribes(t *testing.T) {
	h := New(newTestLogger(t))
	sub := h.Subscribe("queue/e1", "check-in/r1")
	sub.Close()
	sub.Close()

	h.Publish(context.Background(), domain.Notification{Topic: "queue/e1", Version: 1})

	_, open := <-sub.C()
	assert.False(t, open)
	assert.Empty(t, h.topics)
}

func TestHub_SinksReceiveAccepted(t *testing.T) {
	sink := &recordingSink{err: errors.New("broker down")}
	h := New(newTestLogger(t), WithSink(sink))
	sub := h.Subscribe("queue/e1")
	defer sub.Close()

	h.Publish(context.Background(),
		domain.Notification{Topic: "queue/e1", Version: 2},
		domain.Notification{Topic: "queue/e1", Version: 1},
		domain.Notification{Topic: "check-in/r1", Version: 2},
	)

	require.NoError(t, h.Close(context.Background()))
	assert.Equal(t, 2, sink.len())

	// after Close the sinks get nothing new
	h.Publish(context.Background(), domain.Notification{Topic: "queue/e1", Version: 3})
	assert.Equal(t, 2, sink.len())
	assert.Equal(t, int64(2), receive(t, sub).Version)
	assert.Equal(t, int64(3), receive(t, sub).Version)
}

// blockingSink holds every delivery until release is closed or ctx ends.
type blockingSink struct {
	release chan struct{}
	entered chan struct{}
	calls   atomic.Int32
}

func (s *blockingSink) Deliver(ctx context.Context, _ domain.Notification) error {
	if s.calls.Add(1) == 1 {
		close(s.entered)
	}
	select {
	case <-s.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func TestHub_SlowSinkDoesNotBlockPublish(t *testing.T) {
	sink := &blockingSink{release: make(chan struct{}), entered: make(chan struct{})}
	h := New(newTestLogger(t), WithSink(sink), WithSinkTimeout(time.Minute), WithSinkQueue(1))
	sub := h.Subscribe("queue/e1")
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		for v := int64(1); v <= 20; v++ {
			h.Publish(context.Background(), domain.Notification{Topic: "queue/e1", Version: v})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish waited on a stuck sink")
	}
	assert.Equal(t, int64(1), receive(t, sub).Version)

	<-sink.entered
	close(sink.release)
	require.NoError(t, h.Close(context.Background()))
	// one batch in flight plus at most one queued, the rest were dropped
	assert.LessOrEqual(t, sink.calls.Load(), int32(2))
}

func TestHub_CloseGivesUpOnStuckSink(t *testing.T) {
	sink := &blockingSink{release: make(chan struct{}), entered: make(chan struct{})}
	h := New(newTestLogger(t), WithSink(sink), WithSinkTimeout(time.Minute))

	h.Publish(context.Background(), domain.Notification{Topic: "queue/e1", Version: 1})
	<-sink.entered

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, h.Close(ctx), context.DeadlineExceeded)

	close(sink.release)
	require.NoError(t, h.Close(context.Background()))
}

func TestHub_CloseWithoutSinks(t *testing.T) {
	h := New(newTestLogger(t))
	require.NoError(t, h.Close(context.Background()))
	h.Publish(context.Background(), domain.Notification{Topic: "queue/e1", Version: 1})
}

func TestHub_VersionsAreOrderedPerExperience(t *testing.T) {
	h := New(newTestLogger(t))
	sub := h.Subscribe("attendee/a1")
	defer sub.Close()

	h.Publish(context.Background(), domain.Notification{Topic: "attendee/a1", ExperienceID: "e1", Version: 9})
	h.Publish(context.Background(), domain.Notification{Topic: "attendee/a1", ExperienceID: "e2", Version: 2})
	h.Publish(context.Background(), domain.Notification{Topic: "attendee/a1", ExperienceID: "e1", Version: 8})

	assert.Equal(t, "e1", receive(t, sub).ExperienceID)
	assert.Equal(t, "e2", receive(t, sub).ExperienceID)
	assertEmpty(t, sub)
}
