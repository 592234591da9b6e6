package ports

import (
	"context"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/domain"
)

type CredentialRepo interface {
	// Create returns domain.ErrCodeCollision when the manual code is taken.
	Create(ctx context.Context, c *domain.Credential) error
	GetByID(ctx context.Context, id string) (*domain.Credential, error)
	GetByManualCode(ctx context.Context, code string) (*domain.Credential, error)
	// RevokeActive revokes the unconsumed credential of a reservation, if any.
	RevokeActive(ctx context.Context, reservationID string, at time.Time) (int, error)
	MarkConsumed(ctx context.Context, id string, at time.Time) error
}

type CheckEventRepo interface {
	Append(ctx context.Context, e *domain.CheckEvent) error
	ListByReservation(ctx context.Context, reservationID string) ([]*domain.CheckEvent, error)
}
