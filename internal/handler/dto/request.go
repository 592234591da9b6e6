package dto

type CreateExperienceRequest struct {
	BoothID                   string `json:"booth_id"`
	Title                     string `json:"title" binding:"required"`
	Description               string `json:"description"`
	StartsAt                  string `json:"starts_at"`
	EndsAt                    string `json:"ends_at"`
	DurationMinutes           int    `json:"duration_minutes" binding:"gte=0"`
	MaxCapacity               int    `json:"max_capacity" binding:"required,gt=0"`
	MaxWaitingCount           int    `json:"max_waiting_count" binding:"gte=0"`
	AllowWaiting              bool   `json:"allow_waiting"`
	AllowDuplicateReservation bool   `json:"allow_duplicate_reservation"`
	IsReservationEnabled      *bool  `json:"is_reservation_enabled"`
}

type UpdateExperienceRequest struct {
	MaxCapacity               *int  `json:"max_capacity"`
	MaxWaitingCount           *int  `json:"max_waiting_count"`
	AllowWaiting              *bool `json:"allow_waiting"`
	AllowDuplicateReservation *bool `json:"allow_duplicate_reservation"`
	IsReservationEnabled      *bool `json:"is_reservation_enabled"`
}

// ReserveRequest may be omitted entirely; attendees reserve for themselves.
type ReserveRequest struct {
	AttendeeID string `json:"attendee_id" binding:"omitempty,uuid"`
	Notes      string `json:"notes" binding:"max=500"`
}

type CodeRequest struct {
	Code string `json:"code" binding:"required"`
	Kind string `json:"kind" binding:"required,oneof=qr manual"`
}

type CreateAttendeeRequest struct {
	Name           string `json:"name" binding:"required"`
	Role           string `json:"role" binding:"omitempty,oneof=attendee operator"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
