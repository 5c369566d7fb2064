package contract

import "errors"

var (
	// ErrNotFound signals that a lookup key has no matching record.
	ErrNotFound = errors.New("record not found")

	// ErrMalformedName signals a customer display name that does not split
	// into exactly a first and a last name.
	ErrMalformedName = errors.New("malformed customer name")

	// ErrModelInvoke covers failures of the agent runtime or the upstream
	// LLM call. Recovered at the turn boundary, never fatal for the session.
	ErrModelInvoke = errors.New("model invoke failed")

	ErrValidation = errors.New("validation failed")
)
