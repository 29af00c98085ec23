package domain

import "errors"

// Domain errors represent business-level errors that can occur in the system.
var (
	// Publish errors
	ErrInvalidTarget   = errors.New("invalid publish target")
	ErrInvalidPort     = errors.New("invalid port mapping")
	ErrStepFailed      = errors.New("publish step failed")
	ErrPublishCanceled = errors.New("publish canceled")

	// Host errors
	ErrHostnameLookup = errors.New("hostname lookup failed")

	// Image errors
	ErrDaemonUnreachable = errors.New("container daemon unreachable")
)
