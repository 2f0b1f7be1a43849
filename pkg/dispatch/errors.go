package dispatch

import "errors"

var (
	// ErrNoChannels indicates the dispatcher has nowhere to deliver.
	ErrNoChannels = errors.New("dispatch: no channels configured")

	// ErrDeliveryFailed indicates at least one channel failed.
	ErrDeliveryFailed = errors.New("dispatch: delivery failed")
)
