package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway password hash.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$10$" + suffix, // never verified in repo tests
		Role:         domain.UserRoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, user.PasswordHash, string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedContract creates a contract owned by the given user.
// Returns a filled domain.Contract.
func SeedContract(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Contract {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	contract := domain.Contract{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         "Contract " + suffix,
		Vendor:        "Vendor " + suffix,
		AgreementType: "msa",
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO contracts (id, user_id, title, vendor, agreement_type, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		contract.ID, contract.UserID, contract.Title, contract.Vendor, contract.AgreementType,
		contract.CreatedAt, contract.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContract insert contract: %v", err)
	}

	return contract
}

// SeedDateTerm creates a date-typed term for a contract.
// Returns a filled domain.Term.
func SeedDateTerm(t *testing.T, pool *pgxpool.Pool, contractID uuid.UUID, key string, date time.Time) domain.Term {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.DateOnly(date)
	term := domain.Term{
		ContractID:      contractID,
		Key:             key,
		Name:            key,
		ValueType:       domain.ValueTypeDate,
		ValueRaw:        d.Format("2006-01-02"),
		ValueNormalized: d.Format("2006-01-02"),
		ValueDate:       &d,
		Status:          domain.TermStatusExtracted,
		Confidence:      0.9,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO terms (contract_id, key, name, value_type, value_raw, value_normalized,
			value_date, status, confidence, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		term.ContractID, term.Key, term.Name, string(term.ValueType), term.ValueRaw,
		term.ValueNormalized, term.ValueDate, string(term.Status), term.Confidence,
		term.CreatedAt, term.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDateTerm insert term: %v", err)
	}

	return term
}

// SeedEvent creates an event for a contract. Pass a non-empty termKey to make
// it a derived event; empty termKey makes a manual event.
// Returns a filled domain.Event.
func SeedEvent(t *testing.T, pool *pgxpool.Pool, contractID uuid.UUID, eventType domain.EventType, date time.Time, termKey string) domain.Event {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	event := domain.Event{
		ID:         uuid.New(),
		ContractID: contractID,
		Type:       eventType,
		Date:       domain.DateOnly(date),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if termKey != "" {
		event.DerivedFromTermKey = &termKey
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO events (id, contract_id, event_type, event_date, derived_from_term_key, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		event.ID, event.ContractID, string(event.Type), event.Date, event.DerivedFromTermKey,
		event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedEvent insert event: %v", err)
	}

	return event
}

// SeedReminder creates a reminder for an event.
// Returns a filled domain.Reminder.
func SeedReminder(t *testing.T, pool *pgxpool.Pool, eventID uuid.UUID, recipients []string, offsets []int, enabled bool) domain.Reminder {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	reminder := domain.Reminder{
		EventID:    eventID,
		Recipients: recipients,
		Offsets:    offsets,
		Enabled:    enabled,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	offsets32 := make([]int32, len(offsets))
	for i, o := range offsets {
		offsets32[i] = int32(o)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO reminders (event_id, recipients, offsets, enabled, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		reminder.EventID, reminder.Recipients, offsets32, reminder.Enabled,
		reminder.CreatedAt, reminder.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReminder insert reminder: %v", err)
	}

	return reminder
}
