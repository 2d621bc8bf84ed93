package attendance

import (
	"context"
	"time"
)

// Service ingests daily time records from the attendance provider.
type Service interface {
	IngestEntry(ctx context.Context, entry *Entry) error
	EntriesForPeriod(ctx context.Context, employeeID int, start, end time.Time) ([]*Entry, error)
}
