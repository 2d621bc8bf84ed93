package employee

import "context"

type Repository interface {
	FindByID(ctx context.Context, employeeID int) (*Employee, error)
	FindAll(ctx context.Context) ([]*Employee, error)
}
