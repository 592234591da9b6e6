package memory

import (
	"context"
	"sort"

	"github.com/rktclgh/fairplay-booth/internal/domain"
)

type AttendeeRepository struct {
	s *Store
}

func NewAttendeeRepo(s *Store) *AttendeeRepository {
	return &AttendeeRepository{s: s}
}

func (r *AttendeeRepository) Create(ctx context.Context, a *domain.Attendee) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.attendees[a.ID] = *a
	id := a.ID
	r.s.record(ctx, func() { delete(r.s.attendees, id) })
	return nil
}

func (r *AttendeeRepository) GetByID(_ context.Context, id string) (*domain.Attendee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.attendees[id]
	if !ok {
		return nil, domain.ErrAttendeeNotFound
	}
	return &a, nil
}

func (r *AttendeeRepository) List(_ context.Context) ([]*domain.Attendee, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Attendee, 0, len(r.s.attendees))
	for _, a := range r.s.attendees {
		a := a
		res = append(res, &a)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Name < res[j].Name })
	return res, nil
}
