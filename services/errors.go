package services

import (
	"errors"
	"strings"
)

// Failure modes of the ticket lifecycle. Handlers translate these to HTTP
// statuses; nothing here carries datastore detail.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("an account with this email already exists")
	ErrDuplicateSerial    = errors.New("a device with this serial number already exists")
	ErrDeviceNotFound     = errors.New("device not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrAlreadyClosed      = errors.New("feedback has already been submitted for this ticket")
)

// ValidationError collects human-readable field problems for a single
// request so the caller can re-render the form with all of them at once.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// validator accumulates messages during request validation
type validator struct {
	messages []string
}

func (v *validator) add(message string) {
	v.messages = append(v.messages, message)
}

func (v *validator) requireNonEmpty(value, message string) {
	if strings.TrimSpace(value) == "" {
		v.add(message)
	}
}

// err returns a ValidationError when any message was recorded
func (v *validator) err() error {
	if len(v.messages) == 0 {
		return nil
	}
	return &ValidationError{Messages: v.messages}
}
