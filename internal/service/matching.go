package service

import (
	"context"
	"log/slog"
	"time"

	"matchbook/internal/domain"
	"matchbook/internal/engine"
	"matchbook/internal/infra"
	"matchbook/internal/infra/storage"
)

// MatchingService is the only write entry point into the engine. It
// coordinates the book, the trade journal and metrics so callers (the CLI)
// stay free of that wiring.
type MatchingService struct {
	book    *engine.OrderBook
	journal *storage.TradeStore // optional; nil disables journaling
	metrics *infra.Metrics
}

// NewMatchingService wires all dependencies. journal may be nil.
func NewMatchingService(book *engine.OrderBook, journal *storage.TradeStore, metrics *infra.Metrics) *MatchingService {
	if metrics == nil {
		metrics = &infra.Metrics{}
	}
	return &MatchingService{
		book:    book,
		journal: journal,
		metrics: metrics,
	}
}

// Submit runs order through the book and journals the resulting trades.
// Journal failures are logged and swallowed: the match already happened and
// is not undone by a slow disk.
func (s *MatchingService) Submit(ctx context.Context, order domain.Order) ([]domain.Trade, error) {
	start := time.Now()

	trades, err := s.book.Submit(order)
	if err != nil {
		s.metrics.RecordRejected()
		slog.Warn("order rejected",
			slog.Uint64("id", order.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	var qty int64
	for _, t := range trades {
		qty += t.Quantity
	}
	rested := qty < order.Quantity
	s.metrics.RecordSubmit(len(trades), qty, rested, time.Since(start))

	if s.journal != nil {
		if err := s.journal.Append(ctx, trades); err != nil {
			slog.Error("failed to journal trades",
				slog.Int("count", len(trades)),
				slog.Any("error", err),
			)
		}
	}

	slog.Info("order processed",
		slog.Uint64("id", order.ID),
		slog.String("side", order.Side.String()),
		slog.Int64("price", order.Price),
		slog.Int64("quantity", order.Quantity),
		slog.Int("trades", len(trades)),
	)
	return trades, nil
}

// Orders returns the resting orders on side in priority order.
func (s *MatchingService) Orders(side domain.Side) []domain.Order {
	return s.book.OrdersForSide(side)
}

// JournalEnabled reports whether executed trades are being journaled.
func (s *MatchingService) JournalEnabled() bool {
	return s.journal != nil
}

// RecentTrades reads up to limit trades from the journal, newest first.
func (s *MatchingService) RecentTrades(ctx context.Context, limit int) ([]storage.TradeRecord, error) {
	if s.journal == nil {
		return nil, nil
	}
	return s.journal.Recent(ctx, limit)
}

// Stats returns a point-in-time metrics snapshot.
func (s *MatchingService) Stats() infra.MetricsSnapshot {
	return s.metrics.Snapshot()
}
