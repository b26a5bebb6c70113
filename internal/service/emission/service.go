package emission

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/greencampus/emission-engine/internal/config"
	"github.com/greencampus/emission-engine/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type calculationRepo interface {
	FindByIdempotencyKey(ctx context.Context, userID uuid.UUID, category, key string) (*domain.Calculation, error)
	GetByID(ctx context.Context, userID, calcID uuid.UUID) (*domain.Calculation, error)
	GetAudit(ctx context.Context, calcID uuid.UUID) (*domain.CalculationAudit, error)
	Create(ctx context.Context, calc *domain.Calculation) (*domain.Calculation, error)
	CreateAudit(ctx context.Context, audit *domain.CalculationAudit) (*domain.CalculationAudit, error)
}

type factorResolver interface {
	Resolve(ctx context.Context, category, country string, date time.Time) (*domain.ResolvedFactor, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service is the idempotent emission calculation engine. It holds no mutable
// state; concurrent submissions coordinate only through storage.
type Service struct {
	calculations calculationRepo
	factors      factorResolver
	tx           txManager
	log          *slog.Logger
	cfg          config.EngineConfig
}

// NewService creates a new emission Service.
func NewService(
	log *slog.Logger,
	calculations calculationRepo,
	factors factorResolver,
	tx txManager,
	cfg config.EngineConfig,
) *Service {
	if cfg.RecoveryReadAttempts < 1 {
		cfg.RecoveryReadAttempts = 1
	}
	if cfg.RecoveryReadDelay <= 0 {
		cfg.RecoveryReadDelay = 25 * time.Millisecond
	}

	return &Service{
		calculations: calculations,
		factors:      factors,
		tx:           tx,
		log:          log.With("service", "emission"),
		cfg:          cfg,
	}
}
