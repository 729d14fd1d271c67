package common

import (
	"errors"
	"fmt"
)

// Commonly used errors
var (
	ErrTitleTooLong    = ErrTooLong("title")
	ErrNameTooLong     = ErrTooLong("name")
	ErrBodyTooLong     = ErrTooLong("post body")
	ErrInvalidCreds    = ErrAccessDenied("invalid credentials")
	ErrInvalidCaptcha  = ErrAccessDenied("invalid captcha")
	ErrMissingCaptcha  = ErrInvalidInput("missing or invalid captcha id")
	ErrMissingImage    = ErrInvalidInput("image required to start a thread")
	ErrEmptyUpload     = ErrInvalidInput("empty files are not allowed")
	ErrUploadTooLarge  = ErrInvalidInput("upload too large")
	ErrNoPermissions   = ErrAccessDenied("insufficient permissions")
)

// StatusError is a simple error with HTTP status code attached
type StatusError struct {
	Err  error
	Code int
}

func (e StatusError) Error() string {
	var prefix string
	switch e.Code {
	case 400:
		prefix = "invalid input"
	case 403:
		prefix = "access denied"
	case 404:
		prefix = "not found"
	case 500:
		prefix = "internal server error"
	}
	return fmt.Sprintf("%s: %s", prefix, e.Err)
}

func (e StatusError) Unwrap() error {
	return e.Err
}

// ErrTooLong is passed, when a field exceeds the maximum string length for
// that specific field
func ErrTooLong(s string) error {
	return StatusError{errors.New(s + " too long"), 400}
}

// ErrInvalidInput is an error that invalid user input was supplied
func ErrInvalidInput(s string) error {
	return StatusError{errors.New(s), 400}
}

// ErrAccessDenied is an error that user does not have enough access rights
func ErrAccessDenied(s string) error {
	return StatusError{errors.New(s), 403}
}

// ErrBanned is a rejection of a write from a banned address. Not a server
// fault; carries the ban reason to the client.
func ErrBanned(reason string) error {
	return StatusError{fmt.Errorf("banned: %s", reason), 403}
}

// ErrInvalidThread is an error that no such thread on this board
func ErrInvalidThread(id uint64, board string) error {
	return StatusError{
		fmt.Errorf("no thread %d on board `%s`", id, board),
		404,
	}
}

// ErrInvalidBoard is an error that an invalid board was provided
func ErrInvalidBoard(board string) error {
	return StatusError{fmt.Errorf("board `%s` does not exist", board), 404}
}

// CanIgnoreClientError returns, if client-caused error can be safely ignored
// and not logged
func CanIgnoreClientError(err error) bool {
	if err == nil {
		return true
	}

	if err, ok := err.(StatusError); ok {
		if err.Code >= 400 && err.Code < 500 {
			return true
		}
	}

	err = errors.Unwrap(err)
	if err != nil {
		return CanIgnoreClientError(err)
	}
	return false
}
