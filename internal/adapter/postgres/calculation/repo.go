// Package calculation implements the Calculation repository using PostgreSQL.
// It provides append-only operations for calculations and their audit snapshots.
package calculation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/greencampus/emission-engine/internal/adapter/postgres"
	"github.com/greencampus/emission-engine/internal/domain"
)

// Name of the unique index behind the idempotency guarantee.
const idempotencyIndex = "uq_calculation_idempotency"

// Repo provides calculation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new calculation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const calculationColumns = `id, user_id, category, input_json, result_kg_co2e, factor_hash, created_at`

const findByIdempotencyKeySQL = `
SELECT ` + calculationColumns + `
FROM calculation
WHERE user_id = $1
  AND category = $2
  AND input_json ->> 'idempotencyKey' = $3`

const getByIDSQL = `
SELECT ` + calculationColumns + `
FROM calculation
WHERE id = $1 AND user_id = $2`

const createCalculationSQL = `
INSERT INTO calculation (` + calculationColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + calculationColumns

const createAuditSQL = `
INSERT INTO calculation_audit (id, calculation_id, factor_snapshot_json, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id, calculation_id, factor_snapshot_json, created_at`

const getAuditSQL = `
SELECT id, calculation_id, factor_snapshot_json, created_at
FROM calculation_audit
WHERE calculation_id = $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindByIdempotencyKey returns the calculation previously stored for
// (userID, category, key). Returns domain.ErrNotFound if there is none.
// Read-only; safe to call any number of times.
func (r *Repo) FindByIdempotencyKey(ctx context.Context, userID uuid.UUID, category, key string) (*domain.Calculation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, findByIdempotencyKeySQL, userID, category, key)
	calc, err := scanCalculation(row)
	if err != nil {
		return nil, postgres.MapError(err, "calculation", category+"/"+key)
	}

	return calc, nil
}

// GetByID returns a calculation by primary key filtered by user_id.
// Returns domain.ErrNotFound if it does not exist or belongs to another user.
func (r *Repo) GetByID(ctx context.Context, userID, calcID uuid.UUID) (*domain.Calculation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	calc, err := scanCalculation(querier.QueryRow(ctx, getByIDSQL, calcID, userID))
	if err != nil {
		return nil, postgres.MapError(err, "calculation", calcID)
	}

	return calc, nil
}

// GetAudit returns the audit snapshot written with the calculation.
func (r *Repo) GetAudit(ctx context.Context, calcID uuid.UUID) (*domain.CalculationAudit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	audit, err := scanAudit(querier.QueryRow(ctx, getAuditSQL, calcID))
	if err != nil {
		return nil, postgres.MapError(err, "calculation_audit", calcID)
	}

	return audit, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new calculation and returns the persisted row.
// A second calculation for the same (user, category, idempotency key) results
// in domain.ErrAlreadyExists. Inside a transaction that error aborts the
// transaction; callers must re-read outside it.
func (r *Repo) Create(ctx context.Context, calc *domain.Calculation) (*domain.Calculation, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	input, err := json.Marshal(calc.Input)
	if err != nil {
		return nil, fmt.Errorf("calculation marshal input: %w", err)
	}

	createdAt := calc.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	createdAt = createdAt.Truncate(time.Microsecond)

	row := querier.QueryRow(ctx, createCalculationSQL,
		calc.ID, calc.UserID, calc.Category, input, calc.KgCO2e, calc.FactorHash, createdAt,
	)
	created, err := scanCalculation(row)
	if err != nil {
		if postgres.IsUniqueViolation(err, "") && !postgres.IsUniqueViolation(err, idempotencyIndex) {
			// Primary key collision, not a duplicate submission.
			return nil, fmt.Errorf("calculation %s: %w", calc.ID, err)
		}
		return nil, postgres.MapError(err, "calculation", calc.ID)
	}

	return created, nil
}

// CreateAudit inserts the audit snapshot for a calculation.
func (r *Repo) CreateAudit(ctx context.Context, audit *domain.CalculationAudit) (*domain.CalculationAudit, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	snapshot, err := json.Marshal(audit.FactorSnapshot)
	if err != nil {
		return nil, fmt.Errorf("calculation_audit marshal snapshot: %w", err)
	}

	createdAt := audit.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	createdAt = createdAt.Truncate(time.Microsecond)

	created, err := scanAudit(querier.QueryRow(ctx, createAuditSQL,
		audit.ID, audit.CalculationID, snapshot, createdAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "calculation_audit", audit.ID)
	}

	return created, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanCalculation(row pgx.Row) (*domain.Calculation, error) {
	var (
		c     domain.Calculation
		input []byte
	)
	if err := row.Scan(&c.ID, &c.UserID, &c.Category, &input, &c.KgCO2e, &c.FactorHash, &c.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(input, &c.Input); err != nil {
		return nil, fmt.Errorf("calculation %s unmarshal input: %w", c.ID, err)
	}
	c.CreatedAt = c.CreatedAt.UTC()

	return &c, nil
}

func scanAudit(row pgx.Row) (*domain.CalculationAudit, error) {
	var (
		a        domain.CalculationAudit
		snapshot []byte
	)
	if err := row.Scan(&a.ID, &a.CalculationID, &snapshot, &a.CreatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal(snapshot, &a.FactorSnapshot); err != nil {
		return nil, fmt.Errorf("calculation_audit %s unmarshal snapshot: %w", a.ID, err)
	}
	a.CreatedAt = a.CreatedAt.UTC()

	return &a, nil
}
