package app

import (
	"log/slog"

	"matchbook/internal/infra"
	"matchbook/internal/infra/storage"
)

// Bootstrap orchestrates the process startup sequence: config, logger,
// trade journal.
type Bootstrap struct {
	Config  *infra.Config
	Journal *storage.TradeStore
	Metrics *infra.Metrics
}

// NewBootstrap creates a new Bootstrap instance.
func NewBootstrap() *Bootstrap {
	return &Bootstrap{Metrics: &infra.Metrics{}}
}

// Initialize loads configuration and brings up the ambient services.
func (b *Bootstrap) Initialize(configPath string) error {
	// 1. Load Config
	cfg, err := infra.LoadConfig(configPath)
	if err != nil {
		return err
	}
	b.Config = cfg

	// 2. Setup Logger
	logger := infra.NewLogger(cfg)
	slog.SetDefault(logger)

	// 3. Open the trade journal, if enabled
	if cfg.Journal.Enabled {
		journal, err := storage.NewTradeStore(cfg.Journal.Path)
		if err != nil {
			return err
		}
		b.Journal = journal
		slog.Info("trade journal ready", slog.String("path", cfg.Journal.Path))
	}

	slog.Info("bootstrap complete",
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("instrument", cfg.Book.Instrument),
		slog.Int("price_scale", cfg.Book.PriceScale),
	)
	return nil
}
