package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/digitalnycagency/seo-audit-api/internal/entity"
	"github.com/redis/go-redis/v9"
)

const auditHistoryKey = "seo-audit:history"

// AuditHistoryRepoImpl keeps a capped list of the most recent audits in a Redis list.
type AuditHistoryRepoImpl struct {
	client     redis.Cmdable
	maxEntries int64
}

// NewAuditHistoryRepo creates a repository keeping at most maxEntries records.
func NewAuditHistoryRepo(client redis.Cmdable, maxEntries int64) *AuditHistoryRepoImpl {
	return &AuditHistoryRepoImpl{client: client, maxEntries: maxEntries}
}

func (r *AuditHistoryRepoImpl) Name() string {
	return "redis"
}

// Save pushes the record to the head of the list and trims the tail.
func (r *AuditHistoryRepoImpl) Save(ctx context.Context, record *entity.AuditRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode audit record: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, auditHistoryKey, payload)
		if r.maxEntries > 0 {
			pipe.LTrim(ctx, auditHistoryKey, 0, r.maxEntries-1)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to push audit for %s: %w", record.URL, err)
	}
	return nil
}
