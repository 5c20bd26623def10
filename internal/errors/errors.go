// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines the caller-facing failure conditions of a move and structured error types
// that preserve context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrEmptySquare indicates a move was requested from a square with no piece.
	ErrEmptySquare = errors.New("empty square")

	// ErrWrongColor indicates the piece on the origin square belongs to the side not to move.
	ErrWrongColor = errors.New("wrong color")

	// ErrIllegalMove indicates a destination the piece cannot legally reach.
	ErrIllegalMove = errors.New("illegal move")

	// ErrTurnComplete indicates the side to move has already moved and the
	// turn has not been handed to the opponent.
	ErrTurnComplete = errors.New("turn already played")

	// ErrInvalidPromotion indicates a promotion to a kind a pawn cannot become.
	ErrInvalidPromotion = errors.New("invalid promotion")

	// ErrInvalidSetup indicates an explicit placement list that is not a valid position.
	ErrInvalidSetup = errors.New("invalid setup")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps a move failure with the move that caused it.
// It implements the error interface and supports unwrapping via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	From   string // Origin square, e.g. "e2"
	To     string // Destination square, e.g. "e4"
	Colour string // Side to move when the move was attempted (if known)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Colour != "" {
		parts = append(parts, strings.ToLower(e.Colour))
	}
	parts = append(parts, fmt.Sprintf("move %s-%s", e.From, e.To))

	context := strings.Join(parts, " ")

	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// SetupError describes why an explicit position could not be built.
type SetupError struct {
	Err    error  // The underlying error
	Square string // Offending square (if applicable)
	Reason string // What was wrong
}

// Error returns a formatted error message with the square and reason.
func (e *SetupError) Error() string {
	var parts []string

	if e.Square != "" {
		parts = append(parts, e.Square)
	}
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "setup error"
}

// Unwrap returns the underlying error.
func (e *SetupError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
