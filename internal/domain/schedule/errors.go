package schedule

import "errors"

var (
	// ErrSessionNotFound indicates the referenced session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrDayNotFound indicates the referenced day number does not exist.
	ErrDayNotFound = errors.New("day not found")
	// ErrInvalidLimit indicates a non-positive daily limit.
	ErrInvalidLimit = errors.New("daily limit must be a positive number of minutes")
	// ErrInvalidInput indicates a blank title or non-positive duration.
	ErrInvalidInput = errors.New("invalid session input")
	// ErrLastDay indicates an attempt to delete the only remaining day.
	ErrLastDay = errors.New("cannot delete the only remaining day")
)
