// Package reminder implements the Reminder repository using PostgreSQL.
package reminder

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

// Repo provides reminder persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reminder repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const reminderColumns = `event_id, recipients, offsets, enabled, created_at, updated_at`

// Upsert inserts or replaces the reminder for an event. Recipients and
// offsets are stored as given; the service layer normalizes them first.
func (r *Repo) Upsert(ctx context.Context, rem domain.Reminder) (domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		INSERT INTO reminders (event_id, recipients, offsets, enabled)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (event_id) DO UPDATE SET
			recipients = EXCLUDED.recipients,
			offsets = EXCLUDED.offsets,
			enabled = EXCLUDED.enabled,
			updated_at = now()
		RETURNING `+reminderColumns,
		rem.EventID, rem.Recipients, offsetsToInt32(rem.Offsets), rem.Enabled)

	stored, err := scanReminder(row)
	if err != nil {
		return domain.Reminder{}, postgres.MapError(err, "reminder", rem.EventID.String())
	}

	return stored, nil
}

// GetByEventID returns the reminder configured for an event.
func (r *Repo) GetByEventID(ctx context.Context, eventID uuid.UUID) (domain.Reminder, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		SELECT `+reminderColumns+`
		FROM reminders
		WHERE event_id = $1`,
		eventID)

	rem, err := scanReminder(row)
	if err != nil {
		return domain.Reminder{}, postgres.MapError(err, "reminder", eventID.String())
	}

	return rem, nil
}

// Delete removes the reminder for an event.
// Returns domain.ErrNotFound when none exists.
func (r *Repo) Delete(ctx context.Context, eventID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM reminders WHERE event_id = $1`, eventID)
	if err != nil {
		return postgres.MapError(err, "reminder", eventID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("reminder %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// ListDueOn returns event rows whose enabled, configured reminders have a
// fire date equal to the given calendar day (event_date - offset days).
// Each row matches at most once even when several offsets land on the day.
func (r *Repo) ListDueOn(ctx context.Context, day time.Time) ([]domain.EventRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `
		SELECT DISTINCT ON (e.id)
			e.id, e.contract_id, e.event_type, e.event_date, e.derived_from_term_key,
			e.created_at, e.updated_at,
			c.id, c.user_id, c.title, c.vendor, c.agreement_type, c.created_at, c.updated_at,
			r.event_id, r.recipients, r.offsets, r.enabled, r.created_at, r.updated_at
		FROM reminders r
		JOIN events e ON e.id = r.event_id
		JOIN contracts c ON c.id = e.contract_id
		JOIN LATERAL unnest(r.offsets) AS off(days) ON e.event_date - off.days = $1::date
		WHERE r.enabled AND cardinality(r.recipients) > 0
		ORDER BY e.id`,
		domain.DateOnly(day))
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	defer rows.Close()

	result := []domain.EventRow{}
	for rows.Next() {
		er, err := scanDueRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan due reminder: %w", err)
		}
		result = append(result, er)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate due reminders: %w", err)
	}

	return result, nil
}

func scanReminder(row pgx.Row) (domain.Reminder, error) {
	var (
		rem     domain.Reminder
		offsets []int32
	)
	err := row.Scan(&rem.EventID, &rem.Recipients, &offsets, &rem.Enabled, &rem.CreatedAt, &rem.UpdatedAt)
	if err != nil {
		return domain.Reminder{}, err
	}
	rem.Offsets = offsetsToInt(offsets)
	return rem, nil
}

func scanDueRow(row pgx.Row) (domain.EventRow, error) {
	var (
		er      domain.EventRow
		rem     domain.Reminder
		offsets []int32
	)

	err := row.Scan(
		&er.Event.ID, &er.Event.ContractID, &er.Event.Type, &er.Event.Date,
		&er.Event.DerivedFromTermKey, &er.Event.CreatedAt, &er.Event.UpdatedAt,
		&er.Contract.ID, &er.Contract.UserID, &er.Contract.Title, &er.Contract.Vendor,
		&er.Contract.AgreementType, &er.Contract.CreatedAt, &er.Contract.UpdatedAt,
		&rem.EventID, &rem.Recipients, &offsets, &rem.Enabled, &rem.CreatedAt, &rem.UpdatedAt,
	)
	if err != nil {
		return domain.EventRow{}, err
	}

	er.Event.Date = domain.DateOnly(er.Event.Date)
	rem.Offsets = offsetsToInt(offsets)
	er.Reminder = &rem

	return er, nil
}

func offsetsToInt32(offsets []int) []int32 {
	out := make([]int32, len(offsets))
	for i, o := range offsets {
		out[i] = int32(o)
	}
	return out
}

func offsetsToInt(offsets []int32) []int {
	out := make([]int, len(offsets))
	for i, o := range offsets {
		out[i] = int(o)
	}
	return out
}
