package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T) (*Store, *TxManager) {
	t.Helper()
	s := NewStore()
	require.NoError(t, NewExperienceRepo(s).Create(context.Background(), &domain.Experience{ID: "e1", MaxCapacity: 2}))
	require.NoError(t, NewExperienceRepo(s).Create(context.Background(), &domain.Experience{ID: "e2", MaxCapacity: 2}))
	return s, NewTxManager(s)
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	s, tx := seed(t)
	experiences := NewExperienceRepo(s)
	reservations := NewReservationRepo(s)
	credentials := NewCredentialRepo(s)
	events := NewCheckEventRepo(s)
	ctx := context.Background()

	boom := errors.New("boom")
	err := tx.InExperience(ctx, "e1", func(ctx context.Context) error {
		exp, err := experiences.GetByID(ctx, "e1")
		require.NoError(t, err)
		exp.CurrentParticipants = 1
		require.NoError(t, experiences.Update(ctx, exp))
		require.NoError(t, reservations.Create(ctx, &domain.Reservation{ID: "r1", ExperienceID: "e1", Status: domain.StatusReady}))
		require.NoError(t, credentials.Create(ctx, &domain.Credential{ID: "c1", ReservationID: "r1", ManualCode: "AB12-C3F4"}))
		require.NoError(t, events.Append(ctx, &domain.CheckEvent{ID: "ev1", ReservationID: "r1"}))
		return boom
	})

	require.ErrorIs(t, err, boom)
	exp, err := experiences.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Zero(t, exp.CurrentParticipants)
	_, err = reservations.GetByID(ctx, "r1")
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
	_, err = credentials.GetByManualCode(ctx, "AB12-C3F4")
	assert.ErrorIs(t, err, domain.ErrCredentialNotFound)
	list, err := events.ListByReservation(ctx, "r1")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestTxManager_CommitsOnSuccess(t *testing.T) {
	s, tx := seed(t)
	reservations := NewReservationRepo(s)
	ctx := context.Background()

	err := tx.InExperience(ctx, "e1", func(ctx context.Context) error {
		return reservations.Create(ctx, &domain.Reservation{ID: "r1", ExperienceID: "e1", Status: domain.StatusWaiting})
	})

	require.NoError(t, err)
	_, err = reservations.GetByID(ctx, "r1")
	assert.NoError(t, err)
}

func TestTxManager_LockTimeout(t *testing.T) {
	_, tx := seed(t)

	locked := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = tx.InExperience(context.Background(), "e1", func(context.Context) error {
			close(locked)
			<-release
			return nil
		})
	}()
	<-locked

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	err := tx.InExperience(ctx, "e1", func(context.Context) error {
		t.Error("must not run while the experience is locked")
		return nil
	})
	require.ErrorIs(t, err, domain.ErrTimeout)

	// other experiences are not blocked
	err = tx.InExperience(context.Background(), "e2", func(context.Context) error { return nil })
	require.NoError(t, err)

	close(release)
	<-done
}

func TestTxManager_SerializesPerExperience(t *testing.T) {
	s, tx := seed(t)
	experiences := NewExperienceRepo(s)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = tx.InExperience(ctx, "e1", func(ctx context.Context) error {
				exp, err := experiences.GetByID(ctx, "e1")
				if err != nil {
					return err
				}
				exp.Version++
				return experiences.Update(ctx, exp)
			})
		}()
	}
	wg.Wait()

	exp, err := experiences.GetByID(ctx, "e1")
	require.NoError(t, err)
	assert.Equal(t, int64(50), exp.Version)
}

func TestTxManager_Nesting(t *testing.T) {
	_, tx := seed(t)
	ctx := context.Background()

	err := tx.InExperience(ctx, "e1", func(ctx context.Context) error {
		inner := tx.InExperience(ctx, "e1", func(context.Context) error { return nil })
		require.NoError(t, inner)
		return tx.InExperience(ctx, "e2", func(context.Context) error { return nil })
	})
	require.Error(t, err)

	err = tx.InExperience(ctx, "missing", func(context.Context) error { return nil })
	require.ErrorIs(t, err, domain.ErrExperienceNotFound)
}

func TestCredentialRepository_OneActivePerReservation(t *testing.T) {
	s := NewStore()
	repo := NewCredentialRepo(s)
	ctx := context.Background()
	at := time.Date(2026, 5, 14, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, &domain.Credential{ID: "c1", ReservationID: "r1", ManualCode: "AAAA-0001"}))
	require.ErrorIs(t, repo.Create(ctx, &domain.Credential{ID: "c2", ReservationID: "r2", ManualCode: "AAAA-0001"}), domain.ErrCodeCollision)
	require.Error(t, repo.Create(ctx, &domain.Credential{ID: "c3", ReservationID: "r1", ManualCode: "AAAA-0002"}))

	n, err := repo.RevokeActive(ctx, "r1", at)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	require.NoError(t, repo.Create(ctx, &domain.Credential{ID: "c3", ReservationID: "r1", ManualCode: "AAAA-0002"}))

	require.NoError(t, repo.MarkConsumed(ctx, "c3", at))
	require.ErrorIs(t, repo.MarkConsumed(ctx, "c3", at), domain.ErrCredentialAlreadyConsumed)
}

func TestReservationRepository_ShiftQueue(t *testing.T) {
	s := NewStore()
	repo := NewReservationRepo(s)
	ctx := context.Background()

	for i, id := range []string{"w1", "w2", "w3"} {
		require.NoError(t, repo.Create(ctx, &domain.Reservation{
			ID: id, ExperienceID: "e1", Status: domain.StatusWaiting,
			QueuePosition: i + 1, QueueSeq: int64(i + 1),
		}))
	}

	require.NoError(t, repo.ShiftQueue(ctx, "e1", 1))

	waiting, err := repo.ListWaiting(ctx, "e1")
	require.NoError(t, err)
	require.Len(t, waiting, 3)
	assert.Equal(t, []int{1, 1, 2}, []int{waiting[0].QueuePosition, waiting[1].QueuePosition, waiting[2].QueuePosition})
}
