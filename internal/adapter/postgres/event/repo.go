// Package event implements the Event repository using PostgreSQL.
//
// Fixed-shape statements are plain SQL; the filterable query over the
// events/contracts/reminders join is built with squirrel.
package event

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/pactwatch/pactwatch-backend/internal/adapter/postgres"
	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

// Repo provides event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new event repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const eventColumns = `id, contract_id, event_type, event_date, derived_from_term_key, created_at, updated_at`

// Create inserts a manual event (nil derived key).
func (r *Repo) Create(ctx context.Context, contractID uuid.UUID, eventType domain.EventType, date time.Time) (domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	id := uuid.New()
	row := q.QueryRow(ctx, `
		INSERT INTO events (id, contract_id, event_type, event_date)
		VALUES ($1, $2, $3, $4)
		RETURNING `+eventColumns,
		id, contractID, eventType, domain.DateOnly(date))

	e, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, postgres.MapError(err, "event", id.String())
	}

	return e, nil
}

// UpsertDerived inserts the derived event for (contract_id, term key) or, if
// one already exists, updates its type and date in place. The existing row
// keeps its id, so a reminder attached to the event survives term updates.
func (r *Repo) UpsertDerived(ctx context.Context, contractID uuid.UUID, termKey string, eventType domain.EventType, date time.Time) (domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		INSERT INTO events (id, contract_id, event_type, event_date, derived_from_term_key)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (contract_id, derived_from_term_key) WHERE derived_from_term_key IS NOT NULL
		DO UPDATE SET
			event_type = EXCLUDED.event_type,
			event_date = EXCLUDED.event_date,
			updated_at = now()
		RETURNING `+eventColumns,
		uuid.New(), contractID, eventType, domain.DateOnly(date), termKey)

	e, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, postgres.MapError(err, "event", termKey)
	}

	return e, nil
}

// DeleteDerived removes the derived event for (contract_id, term key), if any.
// Its reminder cascades in the database. Missing event is not an error: the
// operation is idempotent because term removal calls it unconditionally.
func (r *Repo) DeleteDerived(ctx context.Context, contractID uuid.UUID, termKey string) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := q.Exec(ctx, `
		DELETE FROM events
		WHERE contract_id = $1 AND derived_from_term_key = $2`,
		contractID, termKey)
	if err != nil {
		return postgres.MapError(err, "event", termKey)
	}

	return nil
}

// GetByID returns one event.
func (r *Repo) GetByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE id = $1`,
		eventID)

	e, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, postgres.MapError(err, "event", eventID.String())
	}

	return e, nil
}

// Update changes a manual event's type and date.
// Derived events are not updatable directly; the term drives them.
func (r *Repo) Update(ctx context.Context, eventID uuid.UUID, eventType domain.EventType, date time.Time) (domain.Event, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, `
		UPDATE events
		SET event_type = $2, event_date = $3, updated_at = now()
		WHERE id = $1 AND derived_from_term_key IS NULL
		RETURNING `+eventColumns,
		eventID, eventType, domain.DateOnly(date))

	e, err := scanEvent(row)
	if err != nil {
		return domain.Event{}, postgres.MapError(err, "event", eventID.String())
	}

	return e, nil
}

// Delete removes a manual event. Returns domain.ErrNotFound when the id does
// not exist or names a derived event.
func (r *Repo) Delete(ctx context.Context, eventID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `
		DELETE FROM events
		WHERE id = $1 AND derived_from_term_key IS NULL`,
		eventID)
	if err != nil {
		return postgres.MapError(err, "event", eventID.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("event %s: %w", eventID, domain.ErrNotFound)
	}

	return nil
}

// Query returns event rows for one user matching the filter, joined with the
// owning contract and the event's reminder (nil when none). Rows are ordered
// by event date ascending, then contract id and event id for a stable order
// between equal dates.
func (r *Repo) Query(ctx context.Context, userID uuid.UUID, f domain.EventFilter) ([]domain.EventRow, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := sq.Select(
		"e.id", "e.contract_id", "e.event_type", "e.event_date", "e.derived_from_term_key",
		"e.created_at", "e.updated_at",
		"c.id", "c.user_id", "c.title", "c.vendor", "c.agreement_type", "c.created_at", "c.updated_at",
		"r.event_id", "r.recipients", "r.offsets", "r.enabled", "r.created_at", "r.updated_at",
	).
		From("events e").
		Join("contracts c ON c.id = e.contract_id").
		LeftJoin("reminders r ON r.event_id = e.id").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("e.event_date ASC", "e.contract_id", "e.id").
		PlaceholderFormat(sq.Dollar)

	if f.ContractID != nil {
		b = b.Where(sq.Eq{"e.contract_id": *f.ContractID})
	}
	if f.Month != nil {
		from, to := f.Month.Bounds()
		b = b.Where(sq.GtOrEq{"e.event_date": from}).Where(sq.Lt{"e.event_date": to})
	}
	if len(f.Types) > 0 {
		types := make([]string, 0, len(f.Types))
		for _, t := range f.Types {
			types = append(types, t.String())
		}
		b = b.Where(sq.Eq{"lower(e.event_type)": lowerAll(types)})
	}
	if f.Text != "" {
		pattern := "%" + escapeLike(f.Text) + "%"
		b = b.Where(
			`(c.title ILIKE ? OR c.vendor ILIKE ? OR e.event_type ILIKE ? OR coalesce(e.derived_from_term_key, '') ILIKE ?)`,
			pattern, pattern, pattern, pattern,
		)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build event query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	result := []domain.EventRow{}
	for rows.Next() {
		er, err := scanEventRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		result = append(result, er)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}

	return result, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes ILIKE pattern metacharacters so search text
// matches literally.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func lowerAll(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = domain.NormalizeText(s)
	}
	return out
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var e domain.Event
	err := row.Scan(&e.ID, &e.ContractID, &e.Type, &e.Date, &e.DerivedFromTermKey, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return domain.Event{}, err
	}
	e.Date = domain.DateOnly(e.Date)
	return e, nil
}

func scanEventRow(row pgx.Row) (domain.EventRow, error) {
	var (
		er domain.EventRow

		remEventID    *uuid.UUID
		remRecipients []string
		remOffsets    []int32
		remEnabled    *bool
		remCreatedAt  *time.Time
		remUpdatedAt  *time.Time
	)

	err := row.Scan(
		&er.Event.ID, &er.Event.ContractID, &er.Event.Type, &er.Event.Date,
		&er.Event.DerivedFromTermKey, &er.Event.CreatedAt, &er.Event.UpdatedAt,
		&er.Contract.ID, &er.Contract.UserID, &er.Contract.Title, &er.Contract.Vendor,
		&er.Contract.AgreementType, &er.Contract.CreatedAt, &er.Contract.UpdatedAt,
		&remEventID, &remRecipients, &remOffsets, &remEnabled, &remCreatedAt, &remUpdatedAt,
	)
	if err != nil {
		return domain.EventRow{}, err
	}

	er.Event.Date = domain.DateOnly(er.Event.Date)

	if remEventID != nil {
		offsets := make([]int, len(remOffsets))
		for i, o := range remOffsets {
			offsets[i] = int(o)
		}
		er.Reminder = &domain.Reminder{
			EventID:    *remEventID,
			Recipients: remRecipients,
			Offsets:    offsets,
			Enabled:    *remEnabled,
			CreatedAt:  *remCreatedAt,
			UpdatedAt:  *remUpdatedAt,
		}
	}

	return er, nil
}
