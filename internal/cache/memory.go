package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/clock"
	"github.com/rktclgh/fairplay-booth/internal/domain"
)

type entry struct {
	status    domain.QueueStatus
	expiresAt time.Time
}

// MemoryStatusCache is the single-process StatusCache. A zero ttl keeps
// entries until they are overwritten.
type MemoryStatusCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	clock   clock.Clock
}

func NewMemoryStatusCache(ttl time.Duration, clk clock.Clock) *MemoryStatusCache {
	if clk == nil {
		clk = clock.Real()
	}
	return &MemoryStatusCache{
		entries: make(map[string]entry),
		ttl:     ttl,
		clock:   clk,
	}
}

func (c *MemoryStatusCache) Put(_ context.Context, s domain.QueueStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()
	if cur, ok := c.entries[s.ExperienceID]; ok && c.live(cur, now) && cur.status.Version > s.Version {
		return nil
	}

	e := entry{status: s}
	if c.ttl > 0 {
		e.expiresAt = now.Add(c.ttl)
	}
	c.entries[s.ExperienceID] = e
	return nil
}

func (c *MemoryStatusCache) Get(_ context.Context, experienceID string) (*domain.QueueStatus, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[experienceID]
	if !ok || !c.live(e, c.clock.Now()) {
		return nil, nil
	}
	s := e.status
	return &s, nil
}

func (c *MemoryStatusCache) live(e entry, now time.Time) bool {
	return e.expiresAt.IsZero() || now.Before(e.expiresAt)
}
