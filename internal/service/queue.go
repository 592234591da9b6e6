package service

import (
	"context"
	"fmt"

	"github.com/rktclgh/fairplay-booth/internal/clock"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/rktclgh/fairplay-booth/internal/service/ports"
)

// QueueManager keeps the waiting list of an experience in FIFO order with
// gap-free 1-based positions. Like CapacityLedger it runs inside the
// experience lock.
type QueueManager struct {
	reservations ports.ReservationRepo
	clock        clock.Clock
}

func NewQueueManager(reservations ports.ReservationRepo, clk clock.Clock) *QueueManager {
	return &QueueManager{
		reservations: reservations,
		clock:        clk,
	}
}

// Enqueue appends res. Order is decided by the sequence number alone.
func (q *QueueManager) Enqueue(exp *domain.Experience, res *domain.Reservation) {
	exp.QueueSeq++
	exp.WaitingCount++
	res.QueueSeq = exp.QueueSeq
	res.QueuePosition = exp.WaitingCount
}

// PromoteHead moves the longest waiting reservation to READY and closes the
// gap behind it. Returns nil when the list is empty.
func (q *QueueManager) PromoteHead(ctx context.Context, exp *domain.Experience) (*domain.Reservation, error) {
	waiting, err := q.reservations.ListWaiting(ctx, exp.ID)
	if err != nil {
		return nil, fmt.Errorf("list waiting: %w", err)
	}
	if len(waiting) == 0 {
		exp.WaitingCount = 0
		return nil, nil
	}

	head := waiting[0]
	position := head.QueuePosition
	if _, err = domain.Transition(head, domain.EventPromote, q.clock.Now()); err != nil {
		return nil, err
	}
	if err = q.reservations.Update(ctx, head); err != nil {
		return nil, fmt.Errorf("promote %s: %w", head.ID, err)
	}
	if err = q.Remove(ctx, exp, position); err != nil {
		return nil, err
	}

	return head, nil
}

// Remove closes the gap left by a waiter that held position.
func (q *QueueManager) Remove(ctx context.Context, exp *domain.Experience, position int) error {
	if err := q.reservations.ShiftQueue(ctx, exp.ID, position); err != nil {
		return fmt.Errorf("shift queue: %w", err)
	}
	if exp.WaitingCount > 0 {
		exp.WaitingCount--
	}
	return nil
}
