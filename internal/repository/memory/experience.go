package memory

import (
	"context"
	"sort"

	"github.com/rktclgh/fairplay-booth/internal/domain"
)

type ExperienceRepository struct {
	s *Store
}

func NewExperienceRepo(s *Store) *ExperienceRepository {
	return &ExperienceRepository{s: s}
}

func (r *ExperienceRepository) Create(ctx context.Context, e *domain.Experience) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.experiences[e.ID] = *e
	id := e.ID
	r.s.record(ctx, func() { delete(r.s.experiences, id) })
	return nil
}

func (r *ExperienceRepository) GetByID(_ context.Context, id string) (*domain.Experience, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	e, ok := r.s.experiences[id]
	if !ok {
		return nil, domain.ErrExperienceNotFound
	}
	return &e, nil
}

func (r *ExperienceRepository) List(_ context.Context) ([]*domain.Experience, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res := make([]*domain.Experience, 0, len(r.s.experiences))
	for _, e := range r.s.experiences {
		e := e
		res = append(res, &e)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].StartsAt.After(res[j].StartsAt) })
	return res, nil
}

func (r *ExperienceRepository) Update(ctx context.Context, e *domain.Experience) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	prev, ok := r.s.experiences[e.ID]
	if !ok {
		return domain.ErrExperienceNotFound
	}
	r.s.experiences[e.ID] = *e
	r.s.record(ctx, func() { r.s.experiences[prev.ID] = prev })
	return nil
}
