// Package errors provides structured error types for checkcrates.
//
// Every stage of a search run (argument validation, the registry call,
// reading the response, decoding it, rendering the table) reports failures
// as an [*Error] carrying a [Code]. The CLI prints the first error it sees
// and exits non-zero; nothing retries or recovers.
//
// # Error Codes
//
//   - INVALID_INPUT: bad command-line input or configuration
//   - NETWORK_ERROR: the registry call could not complete
//   - RESPONSE_READ_ERROR: the response body could not be read
//   - DECODE_ERROR: the body did not match the expected schema
//   - INTERNAL_ERROR: a broken internal invariant
//
// # Usage
//
//	err := errors.Wrap(errors.ErrCodeNetwork, origErr, "failed to call api")
//	if errors.Is(err, errors.ErrCodeNetwork) {
//	    // transport failure
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code names the stage of a search run that failed.
type Code string

const (
	// ErrCodeInvalidInput covers the search term, flags and environment.
	ErrCodeInvalidInput Code = "INVALID_INPUT"

	// ErrCodeNetwork covers building, sending and answering the registry
	// request, including non-200 statuses.
	ErrCodeNetwork Code = "NETWORK_ERROR"
	// ErrCodeResponseRead covers a body that ended early or failed mid-read.
	ErrCodeResponseRead Code = "RESPONSE_READ_ERROR"
	// ErrCodeDecode covers a body that is not a valid search response.
	ErrCodeDecode Code = "DECODE_ERROR"

	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a failure tagged with the stage it happened in.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an Error with a formatted message and no cause.
func New(code Code, format string, args ...any) *Error {
	return Wrap(code, nil, format, args...)
}

// Wrap returns an Error whose cause is err.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// Is reports whether any *Error in err's chain carries code.
func Is(err error, code Code) bool {
	for err != nil {
		if e, ok := err.(*Error); ok && e.Code == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	if e := outermost(err); e != nil {
		return e.Code
	}
	return ""
}

// UserMessage renders err for the terminal without the code prefix.
func UserMessage(err error) string {
	e := outermost(err)
	switch {
	case e == nil:
		return err.Error()
	case e.Cause != nil:
		return e.Message + ": " + e.Cause.Error()
	default:
		return e.Message
	}
}

func outermost(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}
