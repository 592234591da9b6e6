package domain

import "time"

type ReservationStatus string

const (
	StatusWaiting    ReservationStatus = "WAITING"
	StatusReady      ReservationStatus = "READY"
	StatusInProgress ReservationStatus = "IN_PROGRESS"
	StatusCompleted  ReservationStatus = "COMPLETED"
	StatusCancelled  ReservationStatus = "CANCELLED"
	StatusNoShow     ReservationStatus = "NO_SHOW"
)

var ActiveStatuses = []ReservationStatus{StatusWaiting, StatusReady, StatusInProgress}

func (s ReservationStatus) IsTerminal() bool {
	switch s {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	default:
		return false
	}
}

// Occupies reports whether a reservation in this status holds a capacity slot.
func (s ReservationStatus) Occupies() bool {
	return s == StatusReady || s == StatusInProgress
}

type Reservation struct {
	ID            string            `json:"id"`
	ExperienceID  string            `json:"experience_id"`
	AttendeeID    string            `json:"attendee_id"`
	Status        ReservationStatus `json:"status"`
	QueuePosition int               `json:"queue_position"`
	QueueSeq      int64             `json:"-"`
	Notes         string            `json:"notes,omitempty"`
	ReservedAt    time.Time         `json:"reserved_at"`
	ReadyAt       *time.Time        `json:"ready_at,omitempty"`
	StartedAt     *time.Time        `json:"started_at,omitempty"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
	CancelledAt   *time.Time        `json:"cancelled_at,omitempty"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type ReserveInput struct {
	ExperienceID string
	AttendeeID   string
	Notes        string
}
