package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greencampus/emission-engine/internal/adapter/postgres"
	"github.com/greencampus/emission-engine/internal/auth"
	"github.com/greencampus/emission-engine/internal/config"
	"github.com/greencampus/emission-engine/internal/transport/middleware"
	"github.com/greencampus/emission-engine/internal/transport/rest"
)

// ErrMissingJWTSecret is returned by Run when no token secret is configured.
// The CLI works without one; the HTTP server cannot identify users.
var ErrMissingJWTSecret = errors.New("auth.jwt_secret is required to serve HTTP")

// Run is the server entry point. It loads configuration, connects to the
// database, wires the engine behind the REST API and serves until ctx is
// cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Auth.JWTSecret == "" {
		return ErrMissingJWTSecret
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	engine := NewEngine(logger, pool, cfg)
	if engine.Cache != nil {
		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)
		go purgeOnSignal(ctx, logger, engine.Cache, hup)
	}
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, 0)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      NewAPI(logger, pool, engine, tokens),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return serve(ctx, logger, srv, cfg.Server)
}

// NewAPI builds the complete HTTP handler: REST routes for the engine and
// health probes behind the middleware stack.
func NewAPI(logger *slog.Logger, pool *pgxpool.Pool, engine *Engine, tokens *auth.TokenManager) http.Handler {
	var healthOpts []rest.HealthOption
	if engine.Cache != nil {
		healthOpts = append(healthOpts, rest.WithFactorCache(engine.Cache))
	}

	router := rest.NewRouter(
		rest.NewCalculationHandler(engine.Service, logger),
		rest.NewFactorHandler(engine.Service, logger),
		rest.NewHealthHandler(pool, BuildVersion(), healthOpts...),
	)

	return NewHandler(logger, tokens, router)
}

// NewHandler wraps the router with the HTTP middleware stack. Auth runs
// innermost so the request logger and panic recovery see every request.
func NewHandler(logger *slog.Logger, tokens *auth.TokenManager, router http.Handler) http.Handler {
	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.Auth(tokens),
	)(router)
}

func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, cfg config.ServerConfig) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
