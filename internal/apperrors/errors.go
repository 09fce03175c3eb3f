// Package apperrors defines the semantic error kinds the domain layers
// return. Transport adapters map them to status codes with errors.Is.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means a referenced fight, league, prediction or event
	// does not exist.
	ErrNotFound = errors.New("not found")

	// ErrBettingClosed means a prediction write was attempted after the
	// cutoff or against a finished fight.
	ErrBettingClosed = errors.New("betting closed")

	// ErrForbidden means the requesting user does not own the resource.
	ErrForbidden = errors.New("forbidden")

	// ErrConflict means a uniqueness rule was violated, e.g. joining a
	// league twice.
	ErrConflict = errors.New("conflict")

	// ErrValidation means the request payload failed a domain rule.
	ErrValidation = errors.New("validation failed")
)

// NotFound wraps ErrNotFound with a human-readable reason.
func NotFound(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// BettingClosed wraps ErrBettingClosed with a human-readable reason.
func BettingClosed(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrBettingClosed)...)
}

// Forbidden wraps ErrForbidden with a human-readable reason.
func Forbidden(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrForbidden)...)
}

// Conflict wraps ErrConflict with a human-readable reason.
func Conflict(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

// Validation wraps ErrValidation with a human-readable reason.
func Validation(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrValidation)...)
}
