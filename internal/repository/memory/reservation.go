package memory

import (
	"context"
	"sort"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/domain"
)

type ReservationRepository struct {
	s *Store
}

func NewReservationRepo(s *Store) *ReservationRepository {
	return &ReservationRepository{s: s}
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.reservations[res.ID] = *res
	id := res.ID
	r.s.record(ctx, func() { delete(r.s.reservations, id) })
	return nil
}

func (r *ReservationRepository) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res, ok := r.s.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return &res, nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *domain.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.reservations[res.ID]
	if !ok {
		return domain.ErrReservationNotFound
	}
	r.s.reservations[res.ID] = *res
	r.s.record(ctx, func() { r.s.reservations[prev.ID] = prev })
	return nil
}

func (r *ReservationRepository) FindActive(_ context.Context, experienceID, attendeeID string) (*domain.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var found *domain.Reservation
	for _, res := range r.s.reservations {
		if res.ExperienceID != experienceID || res.AttendeeID != attendeeID || res.Status.IsTerminal() {
			continue
		}
		if found == nil || res.ReservedAt.After(found.ReservedAt) {
			res := res
			found = &res
		}
	}
	if found == nil {
		return nil, domain.ErrReservationNotFound
	}
	return found, nil
}

func (r *ReservationRepository) ListWaiting(_ context.Context, experienceID string) ([]*domain.Reservation, error) {
	res := r.filter(func(res domain.Reservation) bool {
		return res.ExperienceID == experienceID && res.Status == domain.StatusWaiting
	})
	sort.Slice(res, func(i, j int) bool { return res[i].QueueSeq < res[j].QueueSeq })
	return res, nil
}

func (r *ReservationRepository) ShiftQueue(ctx context.Context, experienceID string, position int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, res := range r.s.reservations {
		if res.ExperienceID != experienceID || res.Status != domain.StatusWaiting || res.QueuePosition <= position {
			continue
		}
		prev := res
		res.QueuePosition--
		r.s.reservations[id] = res
		r.s.record(ctx, func() { r.s.reservations[prev.ID] = prev })
	}
	return nil
}

func (r *ReservationRepository) ListByAttendee(_ context.Context, attendeeID string) ([]*domain.Reservation, error) {
	res := r.filter(func(res domain.Reservation) bool { return res.AttendeeID == attendeeID })
	sort.Slice(res, func(i, j int) bool { return res[i].ReservedAt.After(res[j].ReservedAt) })
	return res, nil
}

func (r *ReservationRepository) ListByExperience(_ context.Context, experienceID string) ([]*domain.Reservation, error) {
	res := r.filter(func(res domain.Reservation) bool { return res.ExperienceID == experienceID })
	sort.Slice(res, func(i, j int) bool { return res[i].ReservedAt.Before(res[j].ReservedAt) })
	return res, nil
}

func (r *ReservationRepository) ListOverdue(_ context.Context, deadline time.Time) ([]*domain.Reservation, error) {
	r.s.mu.RLock()
	ended := make(map[string]bool)
	for id, e := range r.s.experiences {
		if !e.EndsAt.IsZero() && !e.EndsAt.After(deadline) {
			ended[id] = true
		}
	}
	r.s.mu.RUnlock()

	res := r.filter(func(res domain.Reservation) bool {
		return ended[res.ExperienceID] &&
			(res.Status == domain.StatusWaiting || res.Status == domain.StatusReady)
	})
	sort.Slice(res, func(i, j int) bool { return res[i].ReservedAt.Before(res[j].ReservedAt) })
	return res, nil
}

func (r *ReservationRepository) filter(keep func(domain.Reservation) bool) []*domain.Reservation {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*domain.Reservation
	for _, res := range r.s.reservations {
		if keep(res) {
			res := res
			out = append(out, &res)
		}
	}
	return out
}
