package domain

import "errors"

var (
	ErrExperienceNotFound  = errors.New("experience not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrAttendeeNotFound    = errors.New("attendee not found")
)

var (
	ErrCapacityExceeded       = errors.New("experience is full and the waiting list is closed")
	ErrReservationDisabled    = errors.New("reservations are closed for this experience")
	ErrDuplicateReservation   = errors.New("attendee already has an active reservation for this experience")
	ErrInvalidStateTransition = errors.New("invalid reservation state transition")
)

var (
	ErrMalformedCode             = errors.New("malformed entry code")
	ErrCredentialNotFound        = errors.New("entry code not found")
	ErrCredentialExpired         = errors.New("entry code has expired")
	ErrCredentialAlreadyConsumed = errors.New("entry code has already been used")
	ErrCodeCollision             = errors.New("entry code collision")
)

var (
	ErrTimeout    = errors.New("operation timed out")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation error")
)
