package domain

import (
	"fmt"
	"time"
)

type ReservationEvent string

const (
	EventPromote     ReservationEvent = "promote"
	EventCheckIn     ReservationEvent = "check_in"
	EventCheckOut    ReservationEvent = "check_out"
	EventCancel      ReservationEvent = "cancel"
	EventNoShow      ReservationEvent = "no_show"
	EventForceCancel ReservationEvent = "force_cancel"
)

var transitions = map[ReservationStatus]map[ReservationEvent]ReservationStatus{
	StatusWaiting: {
		EventPromote:     StatusReady,
		EventCancel:      StatusCancelled,
		EventForceCancel: StatusCancelled,
	},
	StatusReady: {
		EventCheckIn:     StatusInProgress,
		EventCancel:      StatusCancelled,
		EventForceCancel: StatusCancelled,
		EventNoShow:      StatusNoShow,
	},
	StatusInProgress: {
		EventCheckOut:    StatusCompleted,
		EventForceCancel: StatusCancelled,
	},
}

// Next returns the status reached from `from` on `event`.
func Next(from ReservationStatus, event ReservationEvent) (ReservationStatus, error) {
	to, ok := transitions[from][event]
	if !ok {
		return from, fmt.Errorf("%w: cannot %s a %s reservation", ErrInvalidStateTransition, event, from)
	}
	return to, nil
}

// Transition applies event to r and stamps the matching timestamp.
// On error r is left unchanged.
func Transition(r *Reservation, event ReservationEvent, at time.Time) (ReservationStatus, error) {
	from := r.Status
	to, err := Next(from, event)
	if err != nil {
		return from, err
	}

	r.Status = to
	r.UpdatedAt = at
	if from == StatusWaiting {
		r.QueuePosition = 0
	}

	switch to {
	case StatusReady:
		r.ReadyAt = &at
	case StatusInProgress:
		r.StartedAt = &at
	case StatusCompleted:
		r.CompletedAt = &at
	case StatusCancelled, StatusNoShow:
		r.CancelledAt = &at
	}

	return from, nil
}

// ReleasesSlot reports whether moving from -> to gives back a capacity slot.
func ReleasesSlot(from, to ReservationStatus) bool {
	return from.Occupies() && !to.Occupies()
}
