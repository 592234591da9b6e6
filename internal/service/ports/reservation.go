package ports

import (
	"context"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	// FindActive returns domain.ErrReservationNotFound when the attendee holds no
	// non-terminal reservation for the experience.
	FindActive(ctx context.Context, experienceID, attendeeID string) (*domain.Reservation, error)
	// ListWaiting returns WAITING reservations in enqueue order.
	ListWaiting(ctx context.Context, experienceID string) ([]*domain.Reservation, error)
	// ShiftQueue moves every waiter behind position one step forward.
	ShiftQueue(ctx context.Context, experienceID string, position int) error
	ListByAttendee(ctx context.Context, attendeeID string) ([]*domain.Reservation, error)
	ListByExperience(ctx context.Context, experienceID string) ([]*domain.Reservation, error)
	// ListOverdue returns WAITING and READY reservations of experiences that
	// ended at or before deadline.
	ListOverdue(ctx context.Context, deadline time.Time) ([]*domain.Reservation, error)
}
