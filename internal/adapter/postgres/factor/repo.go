// Package factor implements read access to the append-only emission factor
// catalog using PostgreSQL.
package factor

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/greencampus/emission-engine/internal/adapter/postgres"
	"github.com/greencampus/emission-engine/internal/domain"
)

// Repo resolves emission factors from the catalog. It never writes.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new factor repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Country-specific rows rank above the national default regardless of
// recency. Equal valid_from is broken by the later publication.
const resolveSQL = `
SELECT ef.id, ef.category, ef.country, ef.value, ef.unit,
       fv.id, fv.hash, fv.valid_from, fv.valid_to
FROM emission_factor ef
JOIN factor_version fv ON fv.id = ef.version_id
WHERE ef.category = $1
  AND (ef.country = $2 OR ef.country IS NULL)
  AND fv.valid_from <= $3
  AND (fv.valid_to IS NULL OR fv.valid_to >= $3)
ORDER BY (ef.country IS NOT NULL) DESC,
         fv.valid_from DESC,
         fv.id DESC,
         ef.id DESC
LIMIT 1`

// Resolve returns the single factor applicable to category and country on
// date. Returns domain.ErrNotFound when neither a country-specific nor a
// national factor is valid on that date.
func (r *Repo) Resolve(ctx context.Context, category, country string, date time.Time) (*domain.ResolvedFactor, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	// Compare as a calendar date; valid_from/valid_to are DATE columns.
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var f domain.ResolvedFactor
	err := querier.QueryRow(ctx, resolveSQL, category, country, day).Scan(
		&f.FactorID, &f.Category, &f.Country, &f.Value, &f.Unit,
		&f.VersionID, &f.Hash, &f.ValidFrom, &f.ValidTo,
	)
	if err != nil {
		return nil, postgres.MapError(err, "emission_factor", category+"/"+country+"@"+day.Format(domain.DateLayout))
	}

	return &f, nil
}
