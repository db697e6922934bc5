package services

import (
	"errors"
	"fmt"

	"hospitality-backend/models"
)

var (
	// ErrRecordNotFound is what Store implementations return for unknown ids;
	// the engine wraps it into a NotFoundError naming the entity.
	ErrRecordNotFound = errors.New("record not found")

	// ErrStorageConflict marks transient contention (deadlock, lock wait timeout).
	// The engine retries a bounded number of times before giving up.
	ErrStorageConflict = errors.New("storage conflict")
)

type NotFoundError struct {
	Entity string
	ID     uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// ValidationError collects per-field problems so the caller gets them all at once.
type ValidationError struct {
	fields map[string][]string
}

func newValidationError() *ValidationError {
	return &ValidationError{fields: make(map[string][]string)}
}

func (e *ValidationError) addError(field, message string) {
	e.fields[field] = append(e.fields[field], message)
}

func (e *ValidationError) fieldsCount() int { return len(e.fields) }

func (e *ValidationError) Fields() map[string][]string { return e.fields }

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %+v", e.fields)
}

func IsValidationError(err error) *ValidationError {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}

// RoomUnavailableError carries the conflict count so the caller can branch to
// the alternative finder.
type RoomUnavailableError struct {
	RoomID           uint
	ConflictingCount int
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf("room %d unavailable: %d conflicting reservation(s)", e.RoomID, e.ConflictingCount)
}

func IsRoomUnavailable(err error) *RoomUnavailableError {
	if err == nil {
		return nil
	}
	var ru *RoomUnavailableError
	if errors.As(err, &ru) {
		return ru
	}
	return nil
}

type InvalidTransitionError struct {
	ReservationID uint
	Current       models.ReservationStatus
	Requested     models.ReservationStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("reservation %d: cannot transition from %s to %s", e.ReservationID, e.Current, e.Requested)
}

func IsInvalidTransition(err error) *InvalidTransitionError {
	if err == nil {
		return nil
	}
	var it *InvalidTransitionError
	if errors.As(err, &it) {
		return it
	}
	return nil
}
