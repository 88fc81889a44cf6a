package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Registry rule violations. The typed errors below unwrap to these, so
// callers can match with errors.Is and still read the key with errors.As.
var (
	ErrPhoneNumberConflict = errors.New("phone number already exists")
	ErrIDConflict          = errors.New("id already exists")
	ErrNotFound            = errors.New("mobile contact not found")
)

// Lookup keys named in NotFoundError.
const (
	KeyID          = "id"
	KeyPhoneNumber = "phone number"
)

// PhoneNumberConflictError reports a create or update that would duplicate
// another record's phone number.
type PhoneNumberConflictError struct {
	PhoneNumber string
}

func (e *PhoneNumberConflictError) Error() string {
	return fmt.Sprintf("mobile contact with phone number %s already exists", e.PhoneNumber)
}

func (e *PhoneNumberConflictError) Unwrap() error { return ErrPhoneNumberConflict }

// IDConflictError reports a create that would duplicate an existing ID.
type IDConflictError struct {
	ID int64
}

func (e *IDConflictError) Error() string {
	return fmt.Sprintf("mobile contact with id %d already exists", e.ID)
}

func (e *IDConflictError) Unwrap() error { return ErrIDConflict }

// NotFoundError reports a read, update or delete of a key absent from the
// Store. Key is KeyID or KeyPhoneNumber.
type NotFoundError struct {
	Key   string
	Value string
}

// NotFoundByID returns a NotFoundError for a missing ID.
func NotFoundByID(id int64) *NotFoundError {
	return &NotFoundError{Key: KeyID, Value: strconv.FormatInt(id, 10)}
}

// NotFoundByPhoneNumber returns a NotFoundError for a missing phone number.
func NotFoundByPhoneNumber(phoneNumber string) *NotFoundError {
	return &NotFoundError{Key: KeyPhoneNumber, Value: phoneNumber}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("mobile contact with %s %s not found", e.Key, e.Value)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// IsRuleViolation reports whether err is one of the three Registry errors.
func IsRuleViolation(err error) bool {
	return errors.Is(err, ErrPhoneNumberConflict) ||
		errors.Is(err, ErrIDConflict) ||
		errors.Is(err, ErrNotFound)
}
