// Package memory keeps engine state in process. It gives the same guarantees
// the Postgres repositories do: InExperience serializes per experience, and a
// failed unit of work leaves no writes behind.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rktclgh/fairplay-booth/internal/domain"
)

type Store struct {
	mu           sync.RWMutex
	experiences  map[string]domain.Experience
	reservations map[string]domain.Reservation
	credentials  map[string]domain.Credential
	manualCodes  map[string]string
	checkEvents  map[string][]domain.CheckEvent
	attendees    map[string]domain.Attendee

	locksMu sync.Mutex
	locks   map[string]chan struct{}
}

func NewStore() *Store {
	return &Store{
		experiences:  make(map[string]domain.Experience),
		reservations: make(map[string]domain.Reservation),
		credentials:  make(map[string]domain.Credential),
		manualCodes:  make(map[string]string),
		checkEvents:  make(map[string][]domain.CheckEvent),
		attendees:    make(map[string]domain.Attendee),
		locks:        make(map[string]chan struct{}),
	}
}

type journalKey struct{}

// journal collects undo steps for the writes of one unit of work.
type journal struct {
	experienceID string
	undo         []func()
}

func journalFrom(ctx context.Context) *journal {
	j, _ := ctx.Value(journalKey{}).(*journal)
	return j
}

// record must be called with s.mu held for writing.
func (s *Store) record(ctx context.Context, undo func()) {
	if j := journalFrom(ctx); j != nil {
		j.undo = append(j.undo, undo)
	}
}

func (s *Store) lockFor(experienceID string) chan struct{} {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	l, ok := s.locks[experienceID]
	if !ok {
		l = make(chan struct{}, 1)
		s.locks[experienceID] = l
	}
	return l
}

// TxManager implements ports.TxManager on top of a Store.
type TxManager struct {
	store *Store
}

func NewTxManager(s *Store) *TxManager {
	return &TxManager{store: s}
}

func (m *TxManager) InExperience(ctx context.Context, experienceID string, fn func(ctx context.Context) error) error {
	if j := journalFrom(ctx); j != nil {
		if j.experienceID != experienceID {
			return fmt.Errorf("nested unit of work for experience %s inside %s", experienceID, j.experienceID)
		}
		return fn(ctx)
	}

	m.store.mu.RLock()
	_, ok := m.store.experiences[experienceID]
	m.store.mu.RUnlock()
	if !ok {
		return domain.ErrExperienceNotFound
	}

	lock := m.store.lockFor(experienceID)
	select {
	case lock <- struct{}{}:
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w: waiting for experience lock", domain.ErrTimeout)
		}
		return ctx.Err()
	}
	defer func() { <-lock }()

	j := &journal{experienceID: experienceID}
	err := fn(context.WithValue(ctx, journalKey{}, j))
	if err == nil {
		err = ctx.Err()
		if errors.Is(err, context.DeadlineExceeded) {
			err = fmt.Errorf("%w: experience %s", domain.ErrTimeout, experienceID)
		}
	}
	if err != nil {
		m.store.mu.Lock()
		for i := len(j.undo) - 1; i >= 0; i-- {
			j.undo[i]()
		}
		m.store.mu.Unlock()
		return err
	}

	return nil
}
