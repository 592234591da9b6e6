package domain

import (
	"math"
	"time"
)

type Experience struct {
	ID                        string        `json:"id"`
	BoothID                   string        `json:"booth_id"`
	Title                     string        `json:"title"`
	Description               string        `json:"description"`
	StartsAt                  time.Time     `json:"starts_at"`
	EndsAt                    time.Time     `json:"ends_at"`
	Duration                  time.Duration `json:"duration"`
	MaxCapacity               int           `json:"max_capacity"`
	MaxWaitingCount           int           `json:"max_waiting_count"`
	AllowWaiting              bool          `json:"allow_waiting"`
	AllowDuplicateReservation bool          `json:"allow_duplicate_reservation"`
	IsReservationEnabled      bool          `json:"is_reservation_enabled"`
	CurrentParticipants       int           `json:"current_participants"`
	WaitingCount              int           `json:"waiting_count"`
	QueueSeq                  int64         `json:"-"`
	Version                   int64         `json:"version"`
	CreatedAt                 time.Time     `json:"created_at"`
	UpdatedAt                 time.Time     `json:"updated_at"`
}

// CongestionRate is occupancy as a percentage of capacity, clamped to [0, 100].
// The underlying counters are never clamped.
func (e *Experience) CongestionRate() float64 {
	if e.MaxCapacity <= 0 {
		if e.CurrentParticipants > 0 {
			return 100
		}
		return 0
	}
	rate := float64(e.CurrentParticipants) * 100 / float64(e.MaxCapacity)
	return math.Max(0, math.Min(100, rate))
}

func (e *Experience) HasRoom() bool {
	return e.CurrentParticipants < e.MaxCapacity
}

func (e *Experience) CanQueue() bool {
	return e.AllowWaiting && e.WaitingCount < e.MaxWaitingCount
}

// AcceptsReservations is false when the operator disabled reservations or the slot is over.
func (e *Experience) AcceptsReservations(now time.Time) bool {
	if !e.IsReservationEnabled {
		return false
	}
	return e.EndsAt.IsZero() || now.Before(e.EndsAt)
}

// NoShowPassed reports whether a READY reservation of the experience has
// lapsed at now: the experience ended at least grace ago. Experiences without
// an end never lapse.
func (e *Experience) NoShowPassed(now time.Time, grace time.Duration) bool {
	return !e.EndsAt.IsZero() && !now.Before(e.EndsAt.Add(grace))
}

// Status snapshots the counters. Callers must hold the experience lock
// for the snapshot to be authoritative.
func (e *Experience) Status(now time.Time) QueueStatus {
	s := QueueStatus{
		ExperienceID:        e.ID,
		CurrentParticipants: e.CurrentParticipants,
		WaitingCount:        e.WaitingCount,
		MaxCapacity:         e.MaxCapacity,
		MaxWaitingCount:     e.MaxWaitingCount,
		CongestionRate:      e.CongestionRate(),
		Version:             e.Version,
		UpdatedAt:           now,
	}
	if !e.HasRoom() && e.Duration > 0 && e.MaxCapacity > 0 {
		rounds := (e.WaitingCount + e.MaxCapacity) / e.MaxCapacity
		wait := time.Duration(rounds) * e.Duration
		s.EstimatedWaitTime = &wait
	}
	return s
}

type QueueStatus struct {
	ExperienceID        string         `json:"experience_id"`
	CurrentParticipants int            `json:"current_participants"`
	WaitingCount        int            `json:"waiting_count"`
	MaxCapacity         int            `json:"max_capacity"`
	MaxWaitingCount     int            `json:"max_waiting_count"`
	CongestionRate      float64        `json:"congestion_rate"`
	EstimatedWaitTime   *time.Duration `json:"estimated_wait_time,omitempty"`
	Version             int64          `json:"version"`
	UpdatedAt           time.Time      `json:"updated_at"`
}

type CreateExperienceInput struct {
	BoothID                   string
	Title                     string
	Description               string
	StartsAt                  time.Time
	EndsAt                    time.Time
	Duration                  time.Duration
	MaxCapacity               int
	MaxWaitingCount           int
	AllowWaiting              bool
	AllowDuplicateReservation bool
	IsReservationEnabled      *bool
}

// UpdateExperienceInput carries operator changes; nil fields are left as they are.
type UpdateExperienceInput struct {
	MaxCapacity               *int
	MaxWaitingCount           *int
	AllowWaiting              *bool
	AllowDuplicateReservation *bool
	IsReservationEnabled      *bool
}

type Admission int

const (
	AdmissionRejected Admission = iota
	AdmissionAdmitted
	AdmissionQueued
)

func (a Admission) String() string {
	switch a {
	case AdmissionAdmitted:
		return "admitted"
	case AdmissionQueued:
		return "queued"
	default:
		return "rejected"
	}
}
