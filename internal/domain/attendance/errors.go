package attendance

import "errors"

var (
	ErrEntryNotFound   = errors.New("attendance entry not found")
	ErrDuplicateEntry  = errors.New("attendance entry already exists for this date")
	ErrInvalidTimeSpan = errors.New("time out cannot be before time in")
)
