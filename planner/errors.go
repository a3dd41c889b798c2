package planner

import "errors"

var (
	// ErrInvalidRange means the requested end date falls before the start date.
	ErrInvalidRange = errors.New("end date must be after start date")
	// ErrAlreadyScheduled means the attraction is already on the itinerary
	// for the requested date.
	ErrAlreadyScheduled = errors.New("attraction already scheduled for this date")
)
