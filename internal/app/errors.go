package app

import "errors"

// Sentinel error kinds for this package.
var (
	ErrUnknownKind = errors.New("unknown assignment kind")
	ErrNotStarted  = errors.New("service not started")
)
