package domain

import "time"

const (
	TopicCheckIn     = "check-in/"
	TopicCheckOut    = "check-out/"
	TopicQueue       = "queue/"
	TopicReservation = "reservation/"
	TopicAttendee    = "attendee/"
)

type Notification struct {
	Topic         string            `json:"topic"`
	Message       string            `json:"message"`
	ExperienceID  string            `json:"experience_id"`
	ReservationID string            `json:"reservation_id,omitempty"`
	AttendeeID    string            `json:"attendee_id,omitempty"`
	Status        ReservationStatus `json:"status,omitempty"`
	QueuePosition int               `json:"queue_position,omitempty"`
	Counters      QueueStatus       `json:"counters"`
	Version       int64             `json:"version"`
	OccurredAt    time.Time         `json:"occurred_at"`
}
