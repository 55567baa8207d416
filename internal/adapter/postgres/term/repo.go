// Package term implements the Term repository using PostgreSQL.
package term

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pactwatch/pactwatch-backend/internal/adapter/postgres"
	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

// Repo provides term persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new term repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const termColumns = `contract_id, key, name, value_type, value_raw, value_normalized, value_date,
	status, confidence, created_at, updated_at`

// Upsert inserts or replaces the term for (contract_id, key).
// created_at survives a replace, updated_at moves forward.
func (r *Repo) Upsert(ctx context.Context, t domain.Term) (domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		INSERT INTO terms (contract_id, key, name, value_type, value_raw, value_normalized,
			value_date, status, confidence, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
		ON CONFLICT (contract_id, key) DO UPDATE SET
			name = EXCLUDED.name,
			value_type = EXCLUDED.value_type,
			value_raw = EXCLUDED.value_raw,
			value_normalized = EXCLUDED.value_normalized,
			value_date = EXCLUDED.value_date,
			status = EXCLUDED.status,
			confidence = EXCLUDED.confidence,
			updated_at = now()
		RETURNING `+termColumns,
		t.ContractID, t.Key, t.Name, t.ValueType, t.ValueRaw, t.ValueNormalized,
		t.ValueDate, t.Status, t.Confidence)

	stored, err := scanTerm(row)
	if err != nil {
		return domain.Term{}, postgres.MapError(err, "term", t.Key)
	}

	return stored, nil
}

// GetByKey returns a single term.
func (r *Repo) GetByKey(ctx context.Context, contractID uuid.UUID, key string) (domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		SELECT `+termColumns+`
		FROM terms
		WHERE contract_id = $1 AND key = $2`,
		contractID, key)

	t, err := scanTerm(row)
	if err != nil {
		return domain.Term{}, postgres.MapError(err, "term", key)
	}

	return t, nil
}

// ListByContract returns all terms of one contract, ordered by key.
func (r *Repo) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Term, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `
		SELECT `+termColumns+`
		FROM terms
		WHERE contract_id = $1
		ORDER BY key`,
		contractID)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	defer rows.Close()

	terms := []domain.Term{}
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, fmt.Errorf("scan term: %w", err)
		}
		terms = append(terms, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate terms: %w", err)
	}

	return terms, nil
}

// Delete removes the term for (contract_id, key).
// Returns domain.ErrNotFound when no such term exists.
func (r *Repo) Delete(ctx context.Context, contractID uuid.UUID, key string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM terms WHERE contract_id = $1 AND key = $2`, contractID, key)
	if err != nil {
		return postgres.MapError(err, "term", key)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("term %s: %w", key, domain.ErrNotFound)
	}

	return nil
}

func scanTerm(row pgx.Row) (domain.Term, error) {
	var t domain.Term
	err := row.Scan(
		&t.ContractID, &t.Key, &t.Name, &t.ValueType, &t.ValueRaw, &t.ValueNormalized,
		&t.ValueDate, &t.Status, &t.Confidence, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}
