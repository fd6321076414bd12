package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Validation errors, surfaced to players as the session's current error message
	ErrEmptyName           = errors.New("player name cannot be empty")
	ErrDuplicateName       = errors.New("player name is already taken")
	ErrInsufficientPlayers = errors.New("at least 4 players are needed to start a round")
	ErrNoSuspectSelected   = errors.New("select a suspect before confirming the ejection")

	// Action errors
	ErrActionNotAllowed = errors.New("action is not allowed in the current phase")
	ErrUnknownAction    = errors.New("unknown action")
)

// IsValidationError reports whether err is a player-facing validation failure
// (as opposed to a phase violation or an infrastructure error)
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrDuplicateName) ||
		errors.Is(err, ErrInsufficientPlayers) ||
		errors.Is(err, ErrNoSuspectSelected)
}
