package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/domain"
)

type CredentialRepository struct {
	s *Store
}

func NewCredentialRepo(s *Store) *CredentialRepository {
	return &CredentialRepository{s: s}
}

func (r *CredentialRepository) Create(ctx context.Context, c *domain.Credential) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.manualCodes[c.ManualCode]; taken {
		return domain.ErrCodeCollision
	}
	for _, existing := range r.s.credentials {
		if existing.ReservationID == c.ReservationID && existing.ConsumedAt == nil && existing.RevokedAt == nil {
			return fmt.Errorf("reservation %s already holds credential %s", c.ReservationID, existing.ID)
		}
	}

	r.s.credentials[c.ID] = *c
	r.s.manualCodes[c.ManualCode] = c.ID
	id, code := c.ID, c.ManualCode
	r.s.record(ctx, func() {
		delete(r.s.credentials, id)
		delete(r.s.manualCodes, code)
	})
	return nil
}

func (r *CredentialRepository) GetByID(_ context.Context, id string) (*domain.Credential, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.credentials[id]
	if !ok {
		return nil, domain.ErrCredentialNotFound
	}
	return &c, nil
}

func (r *CredentialRepository) GetByManualCode(ctx context.Context, code string) (*domain.Credential, error) {
	r.s.mu.RLock()
	id, ok := r.s.manualCodes[code]
	r.s.mu.RUnlock()
	if !ok {
		return nil, domain.ErrCredentialNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *CredentialRepository) RevokeActive(ctx context.Context, reservationID string, at time.Time) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	n := 0
	for id, c := range r.s.credentials {
		if c.ReservationID != reservationID || c.ConsumedAt != nil || c.RevokedAt != nil {
			continue
		}
		prev := c
		c.RevokedAt = &at
		r.s.credentials[id] = c
		r.s.record(ctx, func() { r.s.credentials[prev.ID] = prev })
		n++
	}
	return n, nil
}

func (r *CredentialRepository) MarkConsumed(ctx context.Context, id string, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.credentials[id]
	if !ok {
		return domain.ErrCredentialNotFound
	}
	if c.ConsumedAt != nil {
		return domain.ErrCredentialAlreadyConsumed
	}
	prev := c
	c.ConsumedAt = &at
	r.s.credentials[id] = c
	r.s.record(ctx, func() { r.s.credentials[prev.ID] = prev })
	return nil
}

type CheckEventRepository struct {
	s *Store
}

func NewCheckEventRepo(s *Store) *CheckEventRepository {
	return &CheckEventRepository{s: s}
}

func (r *CheckEventRepository) Append(ctx context.Context, e *domain.CheckEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := e.ReservationID
	r.s.checkEvents[key] = append(r.s.checkEvents[key], *e)
	n := len(r.s.checkEvents[key]) - 1
	r.s.record(ctx, func() { r.s.checkEvents[key] = r.s.checkEvents[key][:n] })
	return nil
}

func (r *CheckEventRepository) ListByReservation(_ context.Context, reservationID string) ([]*domain.CheckEvent, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	events := r.s.checkEvents[reservationID]
	res := make([]*domain.CheckEvent, 0, len(events))
	for _, e := range events {
		e := e
		res = append(res, &e)
	}
	return res, nil
}
