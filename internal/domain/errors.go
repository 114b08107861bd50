// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Moderation errors
	ErrIllegalTransition = errors.New("illegal status transition")
	ErrReasonRequired    = errors.New("reason is required for this transition")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrCapacityExceeded  = errors.New("capacity exceeded")
	ErrConflict          = errors.New("entity was modified concurrently")
	ErrPersistence       = errors.New("persistence failure")

	// User-related errors
	ErrUserNotFound        = fmt.Errorf("user %w", ErrNotFound)
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")

	// Organization-related errors
	ErrOrganizationNotFound = fmt.Errorf("organization %w", ErrNotFound)
	ErrOrganizationInactive = errors.New("organization is not approved")

	// Initiative-related errors
	ErrInitiativeNotFound     = fmt.Errorf("initiative %w", ErrNotFound)
	ErrInitiativeNotPublished = errors.New("initiative is not published")

	// Participation-related errors
	ErrParticipantNotFound = fmt.Errorf("participant %w", ErrNotFound)
	ErrAlreadyParticipant  = errors.New("user already requested to join this initiative")
	ErrParticipantState    = errors.New("participant is not in a state that allows this operation")

	// Post-related errors
	ErrPostNotFound        = fmt.Errorf("post %w", ErrNotFound)
	ErrAttachmentNotFound  = fmt.Errorf("attachment %w", ErrNotFound)
	ErrUnsupportedFileType = errors.New("unsupported file type")
)

// CapacityExceededError reports a reservation that would push a counter past its limit.
type CapacityExceededError struct {
	Requested int
	Limit     int
}

func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("capacity exceeded: requested %d, limit %d", e.Requested, e.Limit)
}

// Is lets errors.Is(err, ErrCapacityExceeded) match the typed error.
func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// ErrorCode returns a stable machine-readable code for the moderation error
// family err belongs to, or "internal" when it belongs to none.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrIllegalTransition):
		return "illegal_transition"
	case errors.Is(err, ErrReasonRequired):
		return "reason_required"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrCapacityExceeded):
		return "capacity_exceeded"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrPersistence):
		return "persistence"
	case errors.Is(err, ErrInvalidInput):
		return "invalid_input"
	default:
		return "internal"
	}
}
