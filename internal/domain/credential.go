package domain

import (
	"regexp"
	"time"
)

type CredentialKind string

const (
	KindQR     CredentialKind = "qr"
	KindManual CredentialKind = "manual"
	KindForced CredentialKind = "forced"
)

func (k CredentialKind) Valid() bool {
	return k == KindQR || k == KindManual
}

var manualCodePattern = regexp.MustCompile(`^[A-Z0-9]{4}-[A-Z0-9]{4}$`)

func IsManualCode(code string) bool {
	return manualCodePattern.MatchString(code)
}

type Credential struct {
	ID            string     `json:"id"`
	ReservationID string     `json:"reservation_id"`
	QRPayload     string     `json:"qr_payload"`
	ManualCode    string     `json:"manual_code"`
	IssuedAt      time.Time  `json:"issued_at"`
	ExpiresAt     time.Time  `json:"expires_at"`
	ConsumedAt    *time.Time `json:"consumed_at,omitempty"`
	RevokedAt     *time.Time `json:"-"`
}

// Check validates the credential at now. Consumption wins over expiry.
func (c *Credential) Check(now time.Time) error {
	if c.RevokedAt != nil {
		return ErrCredentialNotFound
	}
	if c.ConsumedAt != nil {
		return ErrCredentialAlreadyConsumed
	}
	if now.Before(c.IssuedAt) || !now.Before(c.ExpiresAt) {
		return ErrCredentialExpired
	}
	return nil
}

type CheckAction string

const (
	ActionCheckIn  CheckAction = "check_in"
	ActionCheckOut CheckAction = "check_out"
)

type CheckOutcome string

const (
	OutcomeSuccess CheckOutcome = "success"
	OutcomeFailure CheckOutcome = "failure"
)

type CheckEvent struct {
	ID            string         `json:"id"`
	ReservationID string         `json:"reservation_id"`
	ExperienceID  string         `json:"experience_id"`
	CredentialID  string         `json:"credential_id,omitempty"`
	Action        CheckAction    `json:"action"`
	Kind          CredentialKind `json:"kind"`
	Outcome       CheckOutcome   `json:"outcome"`
	Reason        string         `json:"reason,omitempty"`
	Forced        bool           `json:"forced"`
	OperatorID    string         `json:"operator_id"`
	OccurredAt    time.Time      `json:"occurred_at"`
}

type CheckResult struct {
	Message       string            `json:"message"`
	AttendeeName  string            `json:"attendee_name"`
	ReservationID string            `json:"reservation_id"`
	Status        ReservationStatus `json:"status"`
	Timestamp     time.Time         `json:"timestamp"`
}
