package attendance

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	// EntriesForPeriod returns the employee's entries with dates in
	// [start, end], ordered by date ascending.
	EntriesForPeriod(ctx context.Context, employeeID int, start, end time.Time) ([]*Entry, error)
}
