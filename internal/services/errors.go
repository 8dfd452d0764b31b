package services

import "errors"

// ValidationError marks missing or malformed caller input. Handlers map it
// to 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func newValidationError(msg string) error { return &ValidationError{Msg: msg} }

var (
	// ErrSessionNotFound: the referenced dialog session does not exist (404).
	ErrSessionNotFound = errors.New("session not found")
	// ErrAlreadyCompleted: results were already submitted for the session (409).
	ErrAlreadyCompleted = errors.New("session already completed")
)
