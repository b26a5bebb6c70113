package app

import (
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greencampus/emission-engine/internal/adapter/factorcache"
	"github.com/greencampus/emission-engine/internal/adapter/postgres"
	"github.com/greencampus/emission-engine/internal/adapter/postgres/calculation"
	"github.com/greencampus/emission-engine/internal/adapter/postgres/factor"
	"github.com/greencampus/emission-engine/internal/config"
	"github.com/greencampus/emission-engine/internal/service/emission"
)

// Engine bundles the calculation service with the optional factor cache in
// front of its catalog reads. Cache is nil when caching is disabled.
type Engine struct {
	Service *emission.Service
	Cache   *factorcache.Cache
}

// NewEngine wires the repositories, transaction manager and calculation
// service on top of pool.
func NewEngine(logger *slog.Logger, pool *pgxpool.Pool, cfg *config.Config) *Engine {
	calculations := calculation.New(pool)
	factors := factor.New(pool)
	txm := postgres.NewTxManager(pool)

	if !cfg.FactorCache.Enabled {
		return &Engine{Service: emission.NewService(logger, calculations, factors, txm, cfg.Engine)}
	}

	cache := factorcache.New(logger, factors, cfg.FactorCache.Size, cfg.FactorCache.TTL)
	logger.Info("factor cache enabled",
		slog.Int("size", cfg.FactorCache.Size),
		slog.Duration("ttl", cfg.FactorCache.TTL),
	)

	return &Engine{
		Service: emission.NewService(logger, calculations, cache, txm, cfg.Engine),
		Cache:   cache,
	}
}
