package contact

import "errors"

var (
	// ErrDeliveryFailed indicates the submission could not be delivered.
	// For the simulated deliverer this is the randomized failure outcome.
	ErrDeliveryFailed = errors.New("contact delivery failed")

	// ErrSuperseded indicates a newer submission started while this one was
	// in flight; the stale result must not overwrite the newer outcome.
	ErrSuperseded = errors.New("submission superseded by a newer one")
)
