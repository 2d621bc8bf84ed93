package leave

import "errors"

var (
	ErrCreditsNotFound = errors.New("leave credits not found")
)
