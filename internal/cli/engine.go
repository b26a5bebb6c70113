package cli

import (
	"context"
	"fmt"

	"github.com/greencampus/emission-engine/internal/adapter/postgres"
	"github.com/greencampus/emission-engine/internal/app"
	"github.com/greencampus/emission-engine/internal/config"
)

func openEngine(ctx context.Context) (engineService, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	return app.NewEngine(logger, pool, cfg).Service, pool.Close, nil
}
