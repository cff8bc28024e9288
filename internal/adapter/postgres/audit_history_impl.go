package postgres

import (
	"context"
	"fmt"

	"github.com/digitalnycagency/seo-audit-api/internal/entity"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool used by the repository.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

const createAuditReportsTable = `
	CREATE TABLE IF NOT EXISTS audit_reports (
		id                BIGSERIAL PRIMARY KEY,
		url               TEXT NOT NULL,
		title             TEXT,
		meta_description  TEXT,
		h1_tags           TEXT[],
		broken_links      TEXT[],
		load_time_seconds DOUBLE PRECISION,
		mobile_friendly   BOOLEAN,
		fetch_error       TEXT,
		audited_at        TIMESTAMPTZ NOT NULL
	);
	CREATE INDEX IF NOT EXISTS audit_reports_url_idx ON audit_reports (url, audited_at DESC);
`

// AuditHistoryRepoImpl stores audit history in PostgreSQL.
type AuditHistoryRepoImpl struct {
	db DB
}

// NewAuditHistoryRepo creates a new instance of AuditHistoryRepoImpl.
func NewAuditHistoryRepo(db DB) *AuditHistoryRepoImpl {
	return &AuditHistoryRepoImpl{db: db}
}

func (r *AuditHistoryRepoImpl) Name() string {
	return "postgres"
}

// EnsureSchema creates the audit_reports table if it does not exist.
func (r *AuditHistoryRepoImpl) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createAuditReportsTable); err != nil {
		return fmt.Errorf("failed to create audit_reports table: %w", err)
	}
	return nil
}

// Save inserts one audit. Failed fetches are stored with only url, fetch_error
// and audited_at populated.
func (r *AuditHistoryRepoImpl) Save(ctx context.Context, record *entity.AuditRecord) error {
	query := `
		INSERT INTO audit_reports (url, title, meta_description, h1_tags, broken_links, load_time_seconds, mobile_friendly, fetch_error, audited_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	var (
		title, description *string
		h1Tags, broken     []string
		loadTime           *float64
		mobile             *bool
		fetchErr           *string
	)
	if rep := record.Report; rep != nil {
		title = &rep.Title
		description = &rep.MetaDescription
		h1Tags = rep.H1Tags
		broken = rep.BrokenLinks
		loadTime = &rep.LoadTime
		mobile = &rep.MobileFriendly
	} else {
		fetchErr = &record.FetchError
	}

	_, err := r.db.Exec(ctx, query,
		record.URL,
		title,
		description,
		h1Tags,
		broken,
		loadTime,
		mobile,
		fetchErr,
		record.AuditedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit for %s: %w", record.URL, err)
	}
	return nil
}
