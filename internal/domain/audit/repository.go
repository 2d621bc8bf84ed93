package audit

import "context"

type Repository interface {
	Insert(ctx context.Context, entry *Entry) error
	FindRecent(ctx context.Context, limit int) ([]*Entry, error)
}
