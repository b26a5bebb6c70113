package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/greencampus/emission-engine/internal/domain"
)

// Demo catalog hashes used by the end-to-end scenarios.
const (
	DemoHashCL       = "demo-abc123-cl-2025-09"
	DemoHashNational = "demo-abc123-national-2025"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueCategory returns a category name no other test uses, so factor
// resolution tests do not see each other's catalog rows in the shared DB.
func UniqueCategory(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// FactorSeed describes one factor plus the version it is published in.
type FactorSeed struct {
	Category  string
	Country   *string
	Value     float64
	Unit      string
	Hash      string
	ValidFrom time.Time
	ValidTo   *time.Time
}

// Date returns midnight UTC of the given day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T { return &v }

// SeedFactor publishes a new factor version holding a single factor and
// returns the persisted rows. An empty Hash gets a unique generated one.
func SeedFactor(t *testing.T, pool *pgxpool.Pool, seed FactorSeed) (domain.FactorVersion, domain.EmissionFactor) {
	t.Helper()
	ctx := context.Background()

	if seed.Hash == "" {
		seed.Hash = "test-" + uuid.New().String()
	}
	if seed.Unit == "" {
		seed.Unit = "kgCO2e/unit"
	}

	version := domain.FactorVersion{
		Hash:      seed.Hash,
		ValidFrom: seed.ValidFrom,
		ValidTo:   seed.ValidTo,
	}
	err := pool.QueryRow(ctx,
		`INSERT INTO factor_version (hash, valid_from, valid_to)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		seed.Hash, seed.ValidFrom, seed.ValidTo,
	).Scan(&version.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedFactor insert factor_version: %v", err)
	}

	factor := domain.EmissionFactor{
		Category:  seed.Category,
		Country:   seed.Country,
		Value:     seed.Value,
		Unit:      seed.Unit,
		VersionID: version.ID,
	}
	err = pool.QueryRow(ctx,
		`INSERT INTO emission_factor (category, country, value, unit, version_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		factor.Category, factor.Country, factor.Value, factor.Unit, factor.VersionID,
	).Scan(&factor.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedFactor insert emission_factor: %v", err)
	}

	return version, factor
}

// SeedDemoCatalog publishes the demo electricity factors: a Chile-specific
// factor of 0.470 for September 2025 and a national factor of 0.450 for all
// of 2025. Safe to call from parallel tests; each version is published once.
func SeedDemoCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	seeds := []FactorSeed{
		{
			Category:  domain.KindElectricity.Category(),
			Country:   Ptr("CL"),
			Value:     0.470,
			Unit:      "kgCO2e/kWh",
			Hash:      DemoHashCL,
			ValidFrom: Date(2025, time.September, 1),
			ValidTo:   Ptr(Date(2025, time.September, 30)),
		},
		{
			Category:  domain.KindElectricity.Category(),
			Value:     0.450,
			Unit:      "kgCO2e/kWh",
			Hash:      DemoHashNational,
			ValidFrom: Date(2025, time.January, 1),
			ValidTo:   Ptr(Date(2025, time.December, 31)),
		},
	}

	// Version and factor go in one statement so a concurrent seeder either
	// sees both rows or neither.
	const q = `
WITH v AS (
    INSERT INTO factor_version (hash, valid_from, valid_to)
    VALUES ($1, $2, $3)
    ON CONFLICT (hash) DO NOTHING
    RETURNING id
)
INSERT INTO emission_factor (category, country, value, unit, version_id)
SELECT $4, $5, $6, $7, id FROM v`

	batch := &pgx.Batch{}
	for _, s := range seeds {
		batch.Queue(q, s.Hash, s.ValidFrom, s.ValidTo, s.Category, s.Country, s.Value, s.Unit)
	}

	br := pool.SendBatch(context.Background(), batch)
	defer br.Close()
	for range seeds {
		if _, err := br.Exec(); err != nil {
			t.Fatalf("testhelper: SeedDemoCatalog: %v", err)
		}
	}
}

// SeedCalculation inserts a calculation row directly, bypassing the engine.
func SeedCalculation(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, category, idempotencyKey string, kg float64) domain.Calculation {
	t.Helper()

	calc := domain.Calculation{
		ID:         uuid.New(),
		UserID:     userID,
		Category:   category,
		Input:      domain.InputSnapshot{domain.IdempotencyKeyField: idempotencyKey},
		KgCO2e:     kg,
		FactorHash: "seed-" + uniqueSuffix(),
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}

	input, err := json.Marshal(calc.Input)
	if err != nil {
		t.Fatalf("testhelper: SeedCalculation marshal input: %v", err)
	}

	_, err = pool.Exec(context.Background(),
		`INSERT INTO calculation (id, user_id, category, input_json, result_kg_co2e, factor_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		calc.ID, calc.UserID, calc.Category, input, calc.KgCO2e, calc.FactorHash, calc.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCalculation insert: %v", err)
	}

	return calc
}

// CountCalculations returns how many calculation rows exist for the
// (user, category, idempotency key) tuple.
func CountCalculations(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, category, idempotencyKey string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM calculation
		 WHERE user_id = $1 AND category = $2 AND input_json ->> 'idempotencyKey' = $3`,
		userID, category, idempotencyKey,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountCalculations: %v", err)
	}
	return n
}

// CountAudits returns how many audit rows reference calculationID.
func CountAudits(t *testing.T, pool *pgxpool.Pool, calculationID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM calculation_audit WHERE calculation_id = $1`,
		calculationID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountAudits: %v", err)
	}
	return n
}
