package entities

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidArgument marks rejected user input such as unknown features or
	// incompatible feature combinations.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAnchorNotFound is returned when a build descriptor lacks the line a
	// patch is anchored on.
	ErrAnchorNotFound = errors.New("anchor line not found")

	// ErrUnknownArtifact is returned when the dependency catalog has no entry
	// for a looked up artifact id.
	ErrUnknownArtifact = errors.New("unknown artifact")
)

// BadRequestError is a client-visible validation failure that happened before
// anything was written to disk.
type BadRequestError struct {
	Message string
	Err     error
}

func (e *BadRequestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *BadRequestError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status an API layer would answer with.
func (e *BadRequestError) StatusCode() int { return http.StatusBadRequest }
