package leave

import (
	"context"
	"time"
)

type Repository interface {
	// RequestsForPeriod returns the employee's leave rows with dates in
	// [start, end] in insertion order, duplicates included.
	RequestsForPeriod(ctx context.Context, employeeID int, start, end time.Time) ([]*Request, error)
}

type CreditsRepository interface {
	FindByEmployee(ctx context.Context, employeeID int) (*Credits, error)
	UpdateTakenHours(ctx context.Context, employeeID int, takenHours float64) error
}
