package service

import (
	"context"
	"time"

	"github.com/rktclgh/fairplay-booth/internal/clock"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/rktclgh/fairplay-booth/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Deps are the collaborators shared by the engine services.
type Deps struct {
	Tx           ports.TxManager
	Experiences  ports.ExperienceRepo
	Reservations ports.ReservationRepo
	Credentials  ports.CredentialRepo
	CheckEvents  ports.CheckEventRepo
	Attendees    ports.AttendeeRepo
	Publisher    ports.Publisher
	Cache        ports.StatusCache
	Notifier     ports.AttendeeNotifier
	Clock        clock.Clock
	Logger       logger.Logger
	// NoShowGrace is how long after an experience ends a READY reservation
	// still counts as on time.
	NoShowGrace time.Duration
}

type engine struct {
	tx           ports.TxManager
	experiences  ports.ExperienceRepo
	reservations ports.ReservationRepo
	credentials  ports.CredentialRepo
	checkEvents  ports.CheckEventRepo
	attendees    ports.AttendeeRepo
	publisher    ports.Publisher
	cache        ports.StatusCache
	notifier     ports.AttendeeNotifier
	clock        clock.Clock
	logger       logger.Logger
	noShowGrace  time.Duration

	queue  *QueueManager
	ledger *CapacityLedger
}

func newEngine(d Deps) *engine {
	clk := d.Clock
	if clk == nil {
		clk = clock.Real()
	}
	queue := NewQueueManager(d.Reservations, clk)
	return &engine{
		tx:           d.Tx,
		experiences:  d.Experiences,
		reservations: d.Reservations,
		credentials:  d.Credentials,
		checkEvents:  d.CheckEvents,
		attendees:    d.Attendees,
		publisher:    d.Publisher,
		cache:        d.Cache,
		notifier:     d.Notifier,
		clock:        clk,
		logger:       d.Logger,
		noShowGrace:  d.NoShowGrace,
		queue:        queue,
		ledger:       NewCapacityLedger(d.Experiences, queue, clk),
	}
}

type pushKind int

const (
	pushPromoted pushKind = iota
	pushNoShow
	pushCancelled
)

type push struct {
	kind       pushKind
	attendeeID string
	experience domain.Experience
}

// effects collects what a locked section changed. They are applied only
// after the section committed and the experience lock is released.
type effects struct {
	status *domain.QueueStatus
	notes  []domain.Notification
	pushes []push
}

func (e *effects) queueChanged(status domain.QueueStatus, message string) {
	e.status = &status
	e.notes = append(e.notes, domain.Notification{
		Topic:        domain.TopicQueue + status.ExperienceID,
		Message:      message,
		ExperienceID: status.ExperienceID,
		Counters:     status,
		Version:      status.Version,
		OccurredAt:   status.UpdatedAt,
	})
}

func (e *effects) reservationChanged(res *domain.Reservation, status domain.QueueStatus, message string) {
	e.add(domain.TopicReservation+res.ID, res, status, message)
	e.add(domain.TopicAttendee+res.AttendeeID, res, status, message)
}

func (e *effects) add(topic string, res *domain.Reservation, status domain.QueueStatus, message string) {
	e.notes = append(e.notes, domain.Notification{
		Topic:         topic,
		Message:       message,
		ExperienceID:  res.ExperienceID,
		ReservationID: res.ID,
		AttendeeID:    res.AttendeeID,
		Status:        res.Status,
		QueuePosition: res.QueuePosition,
		Counters:      status,
		Version:       status.Version,
		OccurredAt:    res.UpdatedAt,
	})
}

func (e *effects) promoted(promoted []*domain.Reservation, exp *domain.Experience, status domain.QueueStatus) {
	for _, p := range promoted {
		e.reservationChanged(p, status, "It is your turn, please come to the booth")
		e.pushes = append(e.pushes, push{kind: pushPromoted, attendeeID: p.AttendeeID, experience: *exp})
	}
}

func (e *engine) flush(ctx context.Context, eff *effects) {
	if eff.status != nil && e.cache != nil {
		if err := e.cache.Put(ctx, *eff.status); err != nil {
			e.logger.Warn("failed to cache queue status",
				logger.String("experience_id", eff.status.ExperienceID),
				logger.String("error", err.Error()),
			)
		}
	}

	if len(eff.notes) > 0 && e.publisher != nil {
		e.publisher.Publish(ctx, eff.notes...)
	}

	if len(eff.pushes) > 0 && e.notifier != nil {
		go e.pushAttendees(context.WithoutCancel(ctx), eff.pushes)
	}
}

func (e *engine) pushAttendees(ctx context.Context, pushes []push) {
	for _, p := range pushes {
		attendee, err := e.attendees.GetByID(ctx, p.attendeeID)
		if err != nil {
			e.logger.Error("failed to get attendee for notification",
				logger.String("attendee_id", p.attendeeID),
				logger.String("error", err.Error()),
			)
			continue
		}

		exp := p.experience
		switch p.kind {
		case pushPromoted:
			e.notifier.NotifyPromoted(ctx, attendee, &exp)
		case pushNoShow:
			e.notifier.NotifyNoShow(ctx, attendee, &exp)
		case pushCancelled:
			e.notifier.NotifyCancelled(ctx, attendee, &exp)
		}
	}
}
