package ports

import (
	"context"

	"github.com/rktclgh/fairplay-booth/internal/domain"
)

type AttendeeRepo interface {
	Create(ctx context.Context, a *domain.Attendee) error
	GetByID(ctx context.Context, id string) (*domain.Attendee, error)
	List(ctx context.Context) ([]*domain.Attendee, error)
}
