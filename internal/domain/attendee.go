package domain

import "time"

type Role string

const (
	RoleAttendee Role = "attendee"
	RoleOperator Role = "operator"
)

type Attendee struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateAttendeeInput struct {
	Name           string
	Role           Role
	TelegramChatID *int64
}

// Actor is the authenticated caller of an engine operation.
type Actor struct {
	ID   string
	Name string
	Role Role
}

func (a Actor) IsOperator() bool {
	return a.Role == RoleOperator
}

// CanAccess reports whether the actor may act on a resource owned by attendeeID.
func (a Actor) CanAccess(attendeeID string) bool {
	return a.IsOperator() || a.ID == attendeeID
}
