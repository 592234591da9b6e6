package service

import (
	"context"
	"fmt"

	"github.com/rktclgh/fairplay-booth/internal/clock"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/rktclgh/fairplay-booth/internal/service/ports"
)

// CapacityLedger is the admission decision point for an experience. Every
// method must run inside ports.TxManager.InExperience for exp.ID; the ledger
// mutates exp in place and Commit persists it.
type CapacityLedger struct {
	experiences ports.ExperienceRepo
	queue       *QueueManager
	clock       clock.Clock
}

func NewCapacityLedger(experiences ports.ExperienceRepo, queue *QueueManager, clk clock.Clock) *CapacityLedger {
	return &CapacityLedger{
		experiences: experiences,
		queue:       queue,
		clock:       clk,
	}
}

// TryAdmit takes a slot for res, or a place in the waiting list.
func (l *CapacityLedger) TryAdmit(_ context.Context, exp *domain.Experience, res *domain.Reservation) (domain.Admission, error) {
	if !exp.AcceptsReservations(l.clock.Now()) {
		return domain.AdmissionRejected, domain.ErrReservationDisabled
	}

	if exp.HasRoom() {
		exp.CurrentParticipants++
		res.QueuePosition = 0
		return domain.AdmissionAdmitted, nil
	}

	if exp.CanQueue() {
		l.queue.Enqueue(exp, res)
		return domain.AdmissionQueued, nil
	}

	return domain.AdmissionRejected, fmt.Errorf("%w: %d/%d inside, %d/%d waiting",
		domain.ErrCapacityExceeded,
		exp.CurrentParticipants, exp.MaxCapacity,
		exp.WaitingCount, exp.MaxWaitingCount,
	)
}

// Release frees one slot and promotes waiters into whatever room there is.
func (l *CapacityLedger) Release(ctx context.Context, exp *domain.Experience) ([]*domain.Reservation, error) {
	if exp.CurrentParticipants > 0 {
		exp.CurrentParticipants--
	}
	return l.Rebalance(ctx, exp)
}

// Rebalance promotes head waiters while the experience has room, e.g. after
// the operator raised the capacity.
func (l *CapacityLedger) Rebalance(ctx context.Context, exp *domain.Experience) ([]*domain.Reservation, error) {
	var promoted []*domain.Reservation
	for exp.HasRoom() && exp.WaitingCount > 0 {
		res, err := l.queue.PromoteHead(ctx, exp)
		if err != nil {
			return nil, err
		}
		if res == nil {
			break
		}
		exp.CurrentParticipants++
		promoted = append(promoted, res)
	}
	return promoted, nil
}

// Commit bumps the experience version, persists it and returns the snapshot
// to publish.
func (l *CapacityLedger) Commit(ctx context.Context, exp *domain.Experience) (domain.QueueStatus, error) {
	now := l.clock.Now()
	exp.Version++
	exp.UpdatedAt = now
	if err := l.experiences.Update(ctx, exp); err != nil {
		return domain.QueueStatus{}, fmt.Errorf("update experience counters: %w", err)
	}
	return exp.Status(now), nil
}
