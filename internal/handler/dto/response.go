package dto

import (
	"time"

	"github.com/rktclgh/fairplay-booth/internal/domain"
)

type ExperienceResponse struct {
	ID                        string  `json:"id"`
	BoothID                   string  `json:"booth_id"`
	Title                     string  `json:"title"`
	Description               string  `json:"description"`
	StartsAt                  string  `json:"starts_at,omitempty"`
	EndsAt                    string  `json:"ends_at,omitempty"`
	DurationMinutes           int     `json:"duration_minutes"`
	MaxCapacity               int     `json:"max_capacity"`
	MaxWaitingCount           int     `json:"max_waiting_count"`
	AllowWaiting              bool    `json:"allow_waiting"`
	AllowDuplicateReservation bool    `json:"allow_duplicate_reservation"`
	IsReservationEnabled      bool    `json:"is_reservation_enabled"`
	CurrentParticipants       int     `json:"current_participants"`
	WaitingCount              int     `json:"waiting_count"`
	CongestionRate            float64 `json:"congestion_rate"`
	Version                   int64   `json:"version"`
	CreatedAt                 string  `json:"created_at"`
}

type QueueStatusResponse struct {
	ExperienceID         string  `json:"experience_id"`
	CurrentParticipants  int     `json:"current_participants"`
	WaitingCount         int     `json:"waiting_count"`
	MaxCapacity          int     `json:"max_capacity"`
	MaxWaitingCount      int     `json:"max_waiting_count"`
	CongestionRate       float64 `json:"congestion_rate"`
	EstimatedWaitMinutes *int    `json:"estimated_wait_minutes,omitempty"`
	Version              int64   `json:"version"`
	UpdatedAt            string  `json:"updated_at"`
}

type ReservationResponse struct {
	ID            string `json:"id"`
	ExperienceID  string `json:"experience_id"`
	AttendeeID    string `json:"attendee_id"`
	Status        string `json:"status"`
	QueuePosition int    `json:"queue_position,omitempty"`
	Notes         string `json:"notes,omitempty"`
	ReservedAt    string `json:"reserved_at"`
	ReadyAt       string `json:"ready_at,omitempty"`
	StartedAt     string `json:"started_at,omitempty"`
	CompletedAt   string `json:"completed_at,omitempty"`
	CancelledAt   string `json:"cancelled_at,omitempty"`
}

type CredentialResponse struct {
	ID            string `json:"id"`
	ReservationID string `json:"reservation_id"`
	QRPayload     string `json:"qr_payload,omitempty"`
	ManualCode    string `json:"manual_code,omitempty"`
	IssuedAt      string `json:"issued_at"`
	ExpiresAt     string `json:"expires_at"`
}

type CheckResultResponse struct {
	Message       string `json:"message"`
	AttendeeName  string `json:"attendee_name"`
	ReservationID string `json:"reservation_id"`
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
}

type CheckEventResponse struct {
	ID           string `json:"id"`
	Action       string `json:"action"`
	Kind         string `json:"kind"`
	Outcome      string `json:"outcome"`
	Reason       string `json:"reason,omitempty"`
	Forced       bool   `json:"forced"`
	OperatorID   string `json:"operator_id"`
	CredentialID string `json:"credential_id,omitempty"`
	OccurredAt   string `json:"occurred_at"`
}

type AttendeeResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type CreateAttendeeResponse struct {
	Attendee AttendeeResponse `json:"attendee"`
	Token    string           `json:"token"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func ToExperienceResponse(e *domain.Experience) ExperienceResponse {
	return ExperienceResponse{
		ID:                        e.ID,
		BoothID:                   e.BoothID,
		Title:                     e.Title,
		Description:               e.Description,
		StartsAt:                  formatTime(e.StartsAt),
		EndsAt:                    formatTime(e.EndsAt),
		DurationMinutes:           int(e.Duration / time.Minute),
		MaxCapacity:               e.MaxCapacity,
		MaxWaitingCount:           e.MaxWaitingCount,
		AllowWaiting:              e.AllowWaiting,
		AllowDuplicateReservation: e.AllowDuplicateReservation,
		IsReservationEnabled:      e.IsReservationEnabled,
		CurrentParticipants:       e.CurrentParticipants,
		WaitingCount:              e.WaitingCount,
		CongestionRate:            e.CongestionRate(),
		Version:                   e.Version,
		CreatedAt:                 formatTime(e.CreatedAt),
	}
}

func ToQueueStatusResponse(s *domain.QueueStatus) QueueStatusResponse {
	resp := QueueStatusResponse{
		ExperienceID:        s.ExperienceID,
		CurrentParticipants: s.CurrentParticipants,
		WaitingCount:        s.WaitingCount,
		MaxCapacity:         s.MaxCapacity,
		MaxWaitingCount:     s.MaxWaitingCount,
		CongestionRate:      s.CongestionRate,
		Version:             s.Version,
		UpdatedAt:           formatTime(s.UpdatedAt),
	}
	if s.EstimatedWaitTime != nil {
		minutes := int(*s.EstimatedWaitTime / time.Minute)
		resp.EstimatedWaitMinutes = &minutes
	}
	return resp
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:            r.ID,
		ExperienceID:  r.ExperienceID,
		AttendeeID:    r.AttendeeID,
		Status:        string(r.Status),
		QueuePosition: r.QueuePosition,
		Notes:         r.Notes,
		ReservedAt:    formatTime(r.ReservedAt),
		ReadyAt:       formatTimePtr(r.ReadyAt),
		StartedAt:     formatTimePtr(r.StartedAt),
		CompletedAt:   formatTimePtr(r.CompletedAt),
		CancelledAt:   formatTimePtr(r.CancelledAt),
	}
}

func ToReservationResponses(rs []*domain.Reservation) []ReservationResponse {
	resp := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		resp = append(resp, ToReservationResponse(r))
	}
	return resp
}

// ToCredentialResponse leaves the codes out unless withCodes is set, so a
// validation preview never echoes a usable code.
func ToCredentialResponse(c *domain.Credential, withCodes bool) CredentialResponse {
	resp := CredentialResponse{
		ID:            c.ID,
		ReservationID: c.ReservationID,
		IssuedAt:      formatTime(c.IssuedAt),
		ExpiresAt:     formatTime(c.ExpiresAt),
	}
	if withCodes {
		resp.QRPayload = c.QRPayload
		resp.ManualCode = c.ManualCode
	}
	return resp
}

func ToCheckResultResponse(r *domain.CheckResult) CheckResultResponse {
	return CheckResultResponse{
		Message:       r.Message,
		AttendeeName:  r.AttendeeName,
		ReservationID: r.ReservationID,
		Status:        string(r.Status),
		Timestamp:     formatTime(r.Timestamp),
	}
}

func ToCheckEventResponses(events []*domain.CheckEvent) []CheckEventResponse {
	resp := make([]CheckEventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, CheckEventResponse{
			ID:           e.ID,
			Action:       string(e.Action),
			Kind:         string(e.Kind),
			Outcome:      string(e.Outcome),
			Reason:       e.Reason,
			Forced:       e.Forced,
			OperatorID:   e.OperatorID,
			CredentialID: e.CredentialID,
			OccurredAt:   formatTime(e.OccurredAt),
		})
	}
	return resp
}

func ToAttendeeResponse(a *domain.Attendee) AttendeeResponse {
	return AttendeeResponse{
		ID:             a.ID,
		Name:           a.Name,
		Role:           string(a.Role),
		TelegramChatID: a.TelegramChatID,
		CreatedAt:      formatTime(a.CreatedAt),
	}
}
