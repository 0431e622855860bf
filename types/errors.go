package types

import "errors"

// Sentinel error kinds. Every error the engine returns wraps one of these
// with fmt.Errorf("...: %w", ...) so callers can match with errors.Is while
// still getting a human-readable detail message.
var (
	// ErrInvalidInput covers: a negative document id, text/stop-word/query
	// text containing a control byte, a bare "-" query token, a "--"
	// prefixed query token, or an empty minus-word.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate is returned by AddDocument when the id is already live.
	ErrDuplicate = errors.New("duplicate document id")

	// ErrNotFound is returned by MatchDocument against an unknown id.
	ErrNotFound = errors.New("document not found")
)
