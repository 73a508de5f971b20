package toggle

import (
	"errors"
	"fmt"
)

// ErrorCode classifies misuse of a state button.
type ErrorCode string

const (
	ErrCodeEmptyStates     ErrorCode = "EMPTY_STATES"
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
	ErrCodeUnknownValue    ErrorCode = "UNKNOWN_VALUE"
)

// Error is returned for programmatic misuse. The button is left unchanged.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Sentinels for errors.Is; they match any Error with the same code.
var (
	ErrEmptyStates     = &Error{Code: ErrCodeEmptyStates}
	ErrIndexOutOfRange = &Error{Code: ErrCodeIndexOutOfRange}
	ErrUnknownValue    = &Error{Code: ErrCodeUnknownValue}
)

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is matches errors with the same code. A target without a message matches
// any message.
func (e *Error) Is(target error) bool {
	var t *Error
	if e == nil || !errors.As(target, &t) || t == nil {
		return false
	}
	return e.Code == t.Code && (t.Message == "" || t.Message == e.Message)
}

func newError(code ErrorCode, msg string, ctx map[string]any) *Error {
	return &Error{Code: code, Message: msg, Context: ctx}
}
