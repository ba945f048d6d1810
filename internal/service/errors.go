package service

import "errors"

// Failure taxonomy shared by services, actions, and handlers. StorageFailure
// has no sentinel: storage errors pass through unwrapped so transport-layer
// callers see them unmodified.
var (
	// ErrNotFound covers both "no such transaction" and "exists but on
	// another user's account". Merging the two is deliberate information
	// hiding; callers must not be able to probe foreign ids.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument marks malformed caller input, e.g. an unparsable
	// date bound. Terminal, not retryable.
	ErrInvalidArgument = errors.New("invalid argument")
)
