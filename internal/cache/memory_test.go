package cache

import (
	"context"
	"testing"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/clock"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 5, 14, 10, 0, 0, 0, time.UTC)

func TestMemoryStatusCache_Miss(t *testing.T) {
	c := NewMemoryStatusCache(0, clock.NewFake(testNow))

	got, err := c.Get(context.Background(), "e1")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStatusCache_KeepsHighestVersion(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryStatusCache(0, clock.NewFake(testNow))

	require.NoError(t, c.Put(ctx, domain.QueueStatus{ExperienceID: "e1", Version: 3, CurrentParticipants: 2}))
	require.NoError(t, c.Put(ctx, domain.QueueStatus{ExperienceID: "e1", Version: 2, CurrentParticipants: 1}))

	got, err := c.Get(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(3), got.Version)
	assert.Equal(t, 2, got.CurrentParticipants)

	require.NoError(t, c.Put(ctx, domain.QueueStatus{ExperienceID: "e1", Version: 4, CurrentParticipants: 0}))
	got, err = c.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Version)
}

func TestMemoryStatusCache_EntriesExpire(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(testNow)
	c := NewMemoryStatusCache(time.Minute, clk)

	require.NoError(t, c.Put(ctx, domain.QueueStatus{ExperienceID: "e1", Version: 5}))

	clk.Advance(time.Minute)
	got, err := c.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Nil(t, got)

	// an expired snapshot no longer blocks older versions
	require.NoError(t, c.Put(ctx, domain.QueueStatus{ExperienceID: "e1", Version: 1}))
	got, err = c.Get(ctx, "e1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.Version)
}

func TestMemoryStatusCache_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryStatusCache(0, nil)

	require.NoError(t, c.Put(ctx, domain.QueueStatus{ExperienceID: "e1", Version: 1, WaitingCount: 2}))
	got, err := c.Get(ctx, "e1")
	require.NoError(t, err)
	got.WaitingCount = 99

	again, err := c.Get(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, 2, again.WaitingCount)
}
