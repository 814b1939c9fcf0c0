package simulate

import "errors"

// Simulator errors.
var (
	// errBackpressure means the service shed a bulk submission.
	errBackpressure = errors.New("simulate: service backpressure")

	// ErrHealth means the target instance is not healthy.
	ErrHealth = errors.New("simulate: target is not healthy")

	// ErrVerification means at least one scenario produced an
	// unexpected label.
	ErrVerification = errors.New("simulate: label verification failed")
)
