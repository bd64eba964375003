package storage

import (
	"context"
	"path/filepath"
	"testing"

	"matchbook/internal/domain"
)

func newTestStore(t *testing.T) *TradeStore {
	t.Helper()
	store, err := NewTradeStore(filepath.Join(t.TempDir(), "journal", "trades.db"))
	if err != nil {
		t.Fatalf("NewTradeStore failed: %v", err)
	}
	return store
}

func TestAppendAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	batches := [][]domain.Trade{
		{{ActiveOrderID: 2, PassiveOrderID: 1, Price: 100, Quantity: 4}},
		{
			{ActiveOrderID: 3, PassiveOrderID: 1, Price: 100, Quantity: 6},
			{ActiveOrderID: 3, PassiveOrderID: 2, Price: 101, Quantity: 2},
		},
	}
	for _, b := range batches {
		if err := store.Append(ctx, b); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	recs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	// Newest first.
	if recs[0].PassiveOrderID != 2 || recs[2].ActiveOrderID != 2 {
		t.Errorf("unexpected ordering: %+v", recs)
	}
	if recs[0].CreatedAt.IsZero() {
		t.Error("CreatedAt must be set on insert")
	}

	recs, err = store.Recent(ctx, 1)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("limit must cap the result, got %d records", len(recs))
	}
}

func TestAppendEmptyBatch(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Append(ctx, nil); err != nil {
		t.Fatalf("appending nothing must succeed: %v", err)
	}
	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty journal, got %d records", n)
	}
}

func TestCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	trades := []domain.Trade{
		{ActiveOrderID: 2, PassiveOrderID: 1, Price: 100, Quantity: 4},
		{ActiveOrderID: 4, PassiveOrderID: 3, Price: 99, Quantity: 1},
	}
	if err := store.Append(ctx, trades); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2, got %d", n)
	}
}
