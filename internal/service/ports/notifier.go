package ports

import (
	"context"

	"github.com/rktclgh/fairplay-booth/internal/domain"
)

// AttendeeNotifier pushes personal messages outside the live channel.
type AttendeeNotifier interface {
	NotifyPromoted(ctx context.Context, attendee *domain.Attendee, experience *domain.Experience)
	NotifyNoShow(ctx context.Context, attendee *domain.Attendee, experience *domain.Experience)
	NotifyCancelled(ctx context.Context, attendee *domain.Attendee, experience *domain.Experience)
}

// Publisher fans state changes out to live subscribers.
type Publisher interface {
	Publish(ctx context.Context, notes ...domain.Notification)
}

// StatusCache holds the last published congestion snapshot per experience.
type StatusCache interface {
	// Put stores s unless a snapshot with a higher version is already cached.
	Put(ctx context.Context, s domain.QueueStatus) error
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, experienceID string) (*domain.QueueStatus, error)
}
