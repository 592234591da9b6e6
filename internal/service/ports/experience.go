package ports

import (
	"context"

	"github.com/rktclgh/fairplay-booth/internal/domain"
)

type ExperienceRepo interface {
	Create(ctx context.Context, e *domain.Experience) error
	GetByID(ctx context.Context, id string) (*domain.Experience, error)
	List(ctx context.Context) ([]*domain.Experience, error)
	Update(ctx context.Context, e *domain.Experience) error
}
