package repository

import (
	"context"

	"github.com/digitalnycagency/seo-audit-api/internal/entity"
)

// AuditHistoryRepository stores finished audits.
type AuditHistoryRepository interface {
	// Name identifies the store in logs and metrics.
	Name() string
	// Save appends one record to the history.
	Save(ctx context.Context, record *entity.AuditRecord) error
}
