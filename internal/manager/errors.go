package manager

import (
	"errors"
	"net/http"
)

// pairNotFoundError signals that no model directory exists for a pair.
type pairNotFoundError struct{ pair string }

func (e pairNotFoundError) Error() string   { return "language pair not found: " + e.pair }
func (e pairNotFoundError) StatusCode() int { return http.StatusNotFound }

// ErrPairNotFound returns an error for a pair absent from the registry.
func ErrPairNotFound(pair string) error { return pairNotFoundError{pair: pair} }

// IsPairNotFound reports whether the error indicates a missing pair.
func IsPairNotFound(err error) bool {
	var e pairNotFoundError
	return errors.As(err, &e)
}

// loadFailedError signals that a pair could not be loaded into the engine.
type loadFailedError struct {
	pair string
	err  error
}

func (e loadFailedError) Error() string   { return "load " + e.pair + ": " + e.err.Error() }
func (e loadFailedError) Unwrap() error   { return e.err }
func (e loadFailedError) StatusCode() int { return http.StatusServiceUnavailable }

// IsLoadFailed reports whether err came from a failed model load.
func IsLoadFailed(err error) bool {
	var e loadFailedError
	return errors.As(err, &e)
}

// badRequestError signals invalid caller input that never reached the engine.
type badRequestError struct{ msg string }

func (e badRequestError) Error() string   { return e.msg }
func (e badRequestError) StatusCode() int { return http.StatusBadRequest }

// ErrBadRequest constructs a badRequestError.
func ErrBadRequest(msg string) error { return badRequestError{msg: msg} }

// IsBadRequest reports whether err indicates invalid input.
func IsBadRequest(err error) bool {
	var e badRequestError
	return errors.As(err, &e)
}

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("manager is closed")
