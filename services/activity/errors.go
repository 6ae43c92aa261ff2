package activity

import "errors"

var (
	// ErrEmptyBatch is returned when an ingestion request carries no usable pings
	ErrEmptyBatch = errors.New("ping batch contains no usable pings")
	// ErrUnknownActivityType is returned when detection is requested for a
	// type no detector is configured for
	ErrUnknownActivityType = errors.New("unknown activity type")
)
