package postgresql

import (
	"context"
	"fmt"

	"github.com/nimbushr/payroll-backend-go/internal/domain/audit"
	"github.com/nimbushr/payroll-backend-go/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.Repository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Insert(ctx context.Context, entry *audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_logs (id, actor, event_kind, details, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if _, err := q.Exec(ctx, query, entry.ID, entry.Actor, entry.EventKind, entry.Details, entry.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}

	return nil
}

func (r *auditRepository) FindRecent(ctx context.Context, limit int) ([]*audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, actor, event_kind, details, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []*audit.Entry
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(&e.ID, &e.Actor, &e.EventKind, &e.Details, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit entries: %w", err)
	}

	return entries, nil
}
