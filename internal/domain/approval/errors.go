package approval

import "errors"

var (
	ErrRecordNotFound = errors.New("approval record not found")
)
