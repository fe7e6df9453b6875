package root

import (
	"context"

	"github.com/onemoresn/FightersQuest/internal/catalog"
	"github.com/onemoresn/FightersQuest/internal/config"
	"github.com/onemoresn/FightersQuest/internal/engine"
	"github.com/onemoresn/FightersQuest/internal/logger"
	"github.com/onemoresn/FightersQuest/internal/storage"
)

// openService wires config, logging, storage and catalog into a loaded
// service. The cleanup flushes deferred saves and closes the store.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, FilePath: cfg.LogFile})

	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		cat, err = catalog.LoadYAML(cfg.CatalogPath)
		if err != nil {
			return nil, nil, err
		}
	}

	store := storage.Open(ctx, cfg.DataDir, cfg.Backend, log)
	svc := engine.NewService(store, cat, log, engine.ServiceOptions{
		TickPeriod:   cfg.TickPeriod,
		SaveThrottle: cfg.SaveThrottle,
	})
	svc.Load(ctx)

	cleanup := func() {
		if err := svc.Flush(ctx); err != nil {
			log.Warn("final save failed", "err", err)
		}
		_ = store.Close()
	}
	return svc, cleanup, nil
}
