// Package audit records operational events. Recording is fire and
// forget: a failed insert is logged and never fails the operation that
// produced it.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nimbushr/payroll-backend-go/internal/domain/audit"
)

type Recorder struct {
	repo   audit.Repository
	logger *slog.Logger
}

func NewRecorder(repo audit.Repository, logger *slog.Logger) *Recorder {
	return &Recorder{repo: repo, logger: logger}
}

func (r *Recorder) Record(ctx context.Context, actor, eventKind, details string) {
	entry := &audit.Entry{
		ID:        uuid.NewString(),
		Actor:     actor,
		EventKind: eventKind,
		Details:   details,
		CreatedAt: time.Now().UTC(),
	}

	if err := r.repo.Insert(ctx, entry); err != nil {
		r.logger.Error("audit entry dropped",
			"event_kind", eventKind, "actor", actor, "error", err)
	}
}

func (r *Recorder) Recent(ctx context.Context, limit int) ([]*audit.Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	return r.repo.FindRecent(ctx, limit)
}
