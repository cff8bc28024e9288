package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/digitalnycagency/seo-audit-api/internal/entity"
	"github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func recent(t *testing.T, client *redis.Client, n int64) []*entity.AuditRecord {
	t.Helper()
	raw, err := client.LRange(context.Background(), auditHistoryKey, 0, n-1).Result()
	if err != nil {
		t.Fatalf("LRANGE: %v", err)
	}
	records := make([]*entity.AuditRecord, 0, len(raw))
	for _, item := range raw {
		var rec entity.AuditRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			t.Fatalf("decode %q: %v", item, err)
		}
		records = append(records, &rec)
	}
	return records
}

func TestSaveTrimsHistory(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	repo := NewAuditHistoryRepo(client, 3)

	for i := 0; i < 5; i++ {
		rec := &entity.AuditRecord{
			URL:       fmt.Sprintf("https://example.com/%d", i),
			Report:    &entity.AuditReport{Title: "T", H1Tags: []string{}, BrokenLinks: []string{}},
			AuditedAt: time.Now().UTC(),
		}
		if err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("Save: %v", err)
		}
	}

	records := recent(t, client, 10)
	if len(records) != 3 {
		t.Fatalf("expected list trimmed to 3 entries, got %d", len(records))
	}
	if records[0].URL != "https://example.com/4" {
		t.Errorf("expected newest first, got %s", records[0].URL)
	}
	if records[2].URL != "https://example.com/2" {
		t.Errorf("expected oldest kept entry /2, got %s", records[2].URL)
	}
	if records[0].Report == nil || records[0].Report.Title != "T" {
		t.Errorf("report not round-tripped: %+v", records[0].Report)
	}
}

func TestSaveFetchFailureRecord(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)
	repo := NewAuditHistoryRepo(client, 0)

	err := repo.Save(ctx, &entity.AuditRecord{
		URL:        "https://down.test",
		FetchError: "404 Client Error: Not Found for url: https://down.test",
		AuditedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	records := recent(t, client, 1)
	if len(records) != 1 || records[0].Report != nil || records[0].FetchError == "" {
		t.Errorf("unexpected record %+v", records)
	}
}

func TestSaveUnavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	defer client.Close()
	mr.Close()

	repo := NewAuditHistoryRepo(client, 10)
	if err := repo.Save(context.Background(), &entity.AuditRecord{URL: "https://example.com"}); err == nil {
		t.Fatal("expected error when redis is unavailable")
	}
}
