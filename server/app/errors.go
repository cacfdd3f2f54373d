package app

import "github.com/pkg/errors"

var (
	// ErrInvalidUsername is returned for an empty username after trimming.
	ErrInvalidUsername = errors.New("username must not be empty")
	// ErrNotAuthorized is returned when a caller acts on a poll it does not own.
	ErrNotAuthorized = errors.New("not authorized")
)
