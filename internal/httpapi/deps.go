package httpapi

import (
	"context"
	"database/sql"
	"sync/atomic"

	"trackr-engine/internal/config"
	"trackr-engine/internal/events"
)

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	// Atomic stores
	CfgVal       *atomic.Value // stores config.Config
	ScrapeStatus *atomic.Value // stores scrape.Status

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Guarded end-to-end scrape (inject for testability)
	RunScrape func(ctx context.Context, cfg config.Config) (count int, err error)
}
