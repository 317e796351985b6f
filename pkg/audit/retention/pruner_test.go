package retention

import (
	"context"
	"fmt"
	"testing"
	"time"

	"relay-hq/courier/pkg/audit"
	"relay-hq/courier/pkg/audit/storage"
)

func seedRecords(t *testing.T, s audit.Storage, times ...time.Time) {
	t.Helper()
	for i, tm := range times {
		err := s.Store(context.Background(), &audit.Record{
			ID:        fmt.Sprintf("rec-%d", i),
			RequestID: fmt.Sprintf("req-%d", i),
			Time:      tm,
			Endpoint:  "/api/telegram/send",
			APIMethod: "sendMessage",
			Outcome:   "success",
		})
		if err != nil {
			t.Fatalf("Store returned error: %v", err)
		}
	}
}

func TestPruner_PruneByAge(t *testing.T) {
	store := storage.NewMemoryStorage()
	now := time.Now()

	seedRecords(t, store,
		now.AddDate(0, 0, -45),
		now.AddDate(0, 0, -31),
		now.AddDate(0, 0, -5),
		now,
	)

	pruner := NewPruner(store, &Config{RetentionDays: 30})

	deleted, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune returned error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 deleted, got %d", deleted)
	}

	count, _ := store.Count(context.Background())
	if count != 2 {
		t.Errorf("expected 2 remaining, got %d", count)
	}
}

func TestPruner_PruneByCount(t *testing.T) {
	store := storage.NewMemoryStorage()
	now := time.Now()

	seedRecords(t, store,
		now.Add(-4*time.Hour),
		now.Add(-3*time.Hour),
		now.Add(-2*time.Hour),
		now.Add(-time.Hour),
	)

	pruner := NewPruner(store, &Config{MaxRecords: 2})

	deleted, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune returned error: %v", err)
	}
	if deleted != 2 {
		t.Errorf("expected 2 deleted, got %d", deleted)
	}
}

func TestPruner_NoLimitsNoDeletes(t *testing.T) {
	store := storage.NewMemoryStorage()
	seedRecords(t, store, time.Now().AddDate(0, 0, -365))

	pruner := NewPruner(store, &Config{})

	deleted, err := pruner.Prune(context.Background())
	if err != nil {
		t.Fatalf("Prune returned error: %v", err)
	}
	if deleted != 0 {
		t.Errorf("expected 0 deleted, got %d", deleted)
	}
}
