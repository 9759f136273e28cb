package errorz

import "errors"

var (
	NotFound          = errors.New("not found")
	Forbidden         = errors.New("forbidden")
	EventFull         = errors.New("event is full")
	InvalidRsvpStatus = errors.New("invalid rsvp status")
	InvalidRating     = errors.New("rating must be between 1 and 5")
)
