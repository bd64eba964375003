package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"matchbook/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TradeRecord is the persisted form of one execution.
type TradeRecord struct {
	ID             uint64 `gorm:"primaryKey;autoIncrement"`
	ActiveOrderID  uint64
	PassiveOrderID uint64
	Price          int64
	Quantity       int64
	CreatedAt      time.Time
}

// TradeStore appends executed trades to SQLite. It is a journal of what
// happened, not a source the book is ever rebuilt from.
type TradeStore struct {
	db *gorm.DB
}

// NewTradeStore opens (or creates) the journal database at path.
func NewTradeStore(path string) (*TradeStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create journal directory: %w", err)
		}
	}

	// Connect to SQLite (Pure Go)
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	if err := db.AutoMigrate(&TradeRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}

	return &TradeStore{db: db}, nil
}

// Append stores the trades produced by one submission.
func (s *TradeStore) Append(ctx context.Context, trades []domain.Trade) error {
	if len(trades) == 0 {
		return nil
	}

	records := make([]TradeRecord, 0, len(trades))
	for _, t := range trades {
		records = append(records, TradeRecord{
			ActiveOrderID:  t.ActiveOrderID,
			PassiveOrderID: t.PassiveOrderID,
			Price:          t.Price,
			Quantity:       t.Quantity,
		})
	}
	return s.db.WithContext(ctx).Create(&records).Error
}

// Recent returns up to limit trades, newest first.
func (s *TradeStore) Recent(ctx context.Context, limit int) ([]TradeRecord, error) {
	var records []TradeRecord
	err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&records).Error
	return records, err
}

// Count returns the total number of journaled trades.
func (s *TradeStore) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&TradeRecord{}).Count(&n).Error
	return n, err
}
