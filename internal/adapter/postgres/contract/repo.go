// Package contract implements the Contract repository using PostgreSQL.
package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pactwatch/pactwatch-backend/internal/adapter/postgres"
	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

// Repo provides contract persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contract repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const contractColumns = `id, user_id, title, vendor, agreement_type, created_at, updated_at`

// Create inserts a new contract and returns the persisted domain.Contract.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, title, vendor, agreementType string) (domain.Contract, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	row := q.QueryRow(ctx, `
		INSERT INTO contracts (id, user_id, title, vendor, agreement_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING `+contractColumns,
		id, userID, title, vendor, agreementType, now)

	c, err := scanContract(row)
	if err != nil {
		return domain.Contract{}, postgres.MapError(err, "contract", id.String())
	}

	return c, nil
}

// GetByID returns a contract by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		SELECT `+contractColumns+`
		FROM contracts
		WHERE id = $1 AND user_id = $2`,
		contractID, userID)

	c, err := scanContract(row)
	if err != nil {
		return domain.Contract{}, postgres.MapError(err, "contract", contractID.String())
	}

	return c, nil
}

// GetByIDForUpdate locks the contract row for the remainder of the current
// transaction. Term application and event mutation for one contract are
// serialized through this lock (single writer per contract).
func (r *Repo) GetByIDForUpdate(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		SELECT `+contractColumns+`
		FROM contracts
		WHERE id = $1 AND user_id = $2
		FOR UPDATE NOWAIT`,
		contractID, userID)

	c, err := scanContract(row)
	if err != nil {
		return domain.Contract{}, postgres.MapError(err, "contract", contractID.String())
	}

	return c, nil
}

// List returns the user's contracts ordered by creation time, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Contract, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `
		SELECT `+contractColumns+`
		FROM contracts
		WHERE user_id = $1
		ORDER BY created_at DESC, id
		LIMIT $2 OFFSET $3`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()

	contracts := []domain.Contract{}
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contracts: %w", err)
	}

	return contracts, nil
}

// Update replaces the contract metadata.
// Returns domain.ErrNotFound if the contract does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, contractID uuid.UUID, title, vendor, agreementType string) (domain.Contract, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		UPDATE contracts
		SET title = $3, vendor = $4, agreement_type = $5, updated_at = now()
		WHERE id = $1 AND user_id = $2
		RETURNING `+contractColumns,
		contractID, userID, title, vendor, agreementType)

	c, err := scanContract(row)
	if err != nil {
		return domain.Contract{}, postgres.MapError(err, "contract", contractID.String())
	}

	return c, nil
}

// Delete removes a contract. Terms, events, and reminders cascade in the
// database.
func (r *Repo) Delete(ctx context.Context, userID, contractID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM contracts WHERE id = $1 AND user_id = $2`, contractID, userID)
	if err != nil {
		return postgres.MapError(err, "contract", contractID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contract %s: %w", contractID, domain.ErrNotFound)
	}

	return nil
}

func scanContract(row pgx.Row) (domain.Contract, error) {
	var c domain.Contract
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.Vendor, &c.AgreementType, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}
