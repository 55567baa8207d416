package event_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pactwatch/pactwatch-backend/internal/adapter/postgres/event"
	"github.com/pactwatch/pactwatch-backend/internal/adapter/postgres/testhelper"
	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

func newRepo(t *testing.T) (*event.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return event.New(pool), pool
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRepo_Create_Manual(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	c := testhelper.SeedContract(t, pool, user.ID)

	created, err := repo.Create(ctx, c.ID, domain.EventTypeReview, date(2026, time.May, 10))
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if created.DerivedFromTermKey != nil {
		t.Errorf("manual event must have nil derived key, got %q", *created.DerivedFromTermKey)
	}
	if !created.Date.Equal(date(2026, time.May, 10)) {
		t.Errorf("Date mismatch: got %v", created.Date)
	}
}

func TestRepo_UpsertDerived_PreservesIDAndReminder(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	c := testhelper.SeedContract(t, pool, user.ID)

	first, err := repo.UpsertDerived(ctx, c.ID, "renewal_date", domain.EventTypeRenewal, date(2026, time.March, 15))
	if err != nil {
		t.Fatalf("UpsertDerived[1]: unexpected error: %v", err)
	}

	testhelper.SeedReminder(t, pool, first.ID, []string{"ops@example.com"}, []int{30, 7}, true)

	second, err := repo.UpsertDerived(ctx, c.ID, "renewal_date", domain.EventTypeRenewal, date(2026, time.June, 1))
	if err != nil {
		t.Fatalf("UpsertDerived[2]: unexpected error: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("derived event id changed on update: %s -> %s", first.ID, second.ID)
	}
	if !second.Date.Equal(date(2026, time.June, 1)) {
		t.Errorf("Date not updated: got %v", second.Date)
	}

	// The reminder attached to the event survives.
	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM reminders WHERE event_id = $1`, first.ID).Scan(&count); err != nil {
		t.Fatalf("count reminders: %v", err)
	}
	if count != 1 {
		t.Errorf("expected reminder to survive, got %d rows", count)
	}
}

func TestRepo_DeleteDerived_Idempotent(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	c := testhelper.SeedContract(t, pool, user.ID)

	if _, err := repo.UpsertDerived(ctx, c.ID, "termination_date", domain.EventTypeTermination, date(2026, time.December, 1)); err != nil {
		t.Fatalf("UpsertDerived: unexpected error: %v", err)
	}

	if err := repo.DeleteDerived(ctx, c.ID, "termination_date"); err != nil {
		t.Fatalf("DeleteDerived[1]: unexpected error: %v", err)
	}
	// Second delete of a missing derived event is not an error.
	if err := repo.DeleteDerived(ctx, c.ID, "termination_date"); err != nil {
		t.Fatalf("DeleteDerived[2]: unexpected error: %v", err)
	}
}

func TestRepo_Update_RejectsDerived(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	c := testhelper.SeedContract(t, pool, user.ID)

	derived := testhelper.SeedEvent(t, pool, c.ID, domain.EventTypeRenewal, date(2026, time.March, 15), "renewal_date")

	_, err := repo.Update(ctx, derived.ID, domain.EventTypeReview, date(2026, time.April, 1))
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_Delete_Manual(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	c := testhelper.SeedContract(t, pool, user.ID)
	manual := testhelper.SeedEvent(t, pool, c.ID, domain.EventTypeReview, date(2026, time.May, 10), "")

	if err := repo.Delete(ctx, manual.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	err := repo.Delete(ctx, manual.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_Query_Filters(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)
	c1 := testhelper.SeedContract(t, pool, user.ID)
	c2 := testhelper.SeedContract(t, pool, user.ID)
	foreign := testhelper.SeedContract(t, pool, other.ID)

	renewal := testhelper.SeedEvent(t, pool, c1.ID, domain.EventTypeRenewal, date(2026, time.March, 15), "renewal_date")
	testhelper.SeedEvent(t, pool, c1.ID, domain.EventTypeReview, date(2026, time.April, 2), "")
	termination := testhelper.SeedEvent(t, pool, c2.ID, domain.EventTypeTermination, date(2026, time.March, 31), "termination_date")
	testhelper.SeedEvent(t, pool, foreign.ID, domain.EventTypeRenewal, date(2026, time.March, 20), "renewal_date")

	testhelper.SeedReminder(t, pool, renewal.ID, []string{"ops@example.com"}, []int{30, 7}, true)

	t.Run("month bounds", func(t *testing.T) {
		m := domain.Month{Year: 2026, Month: time.March}
		rows, err := repo.Query(ctx, user.ID, domain.EventFilter{Month: &m})
		if err != nil {
			t.Fatalf("Query: unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 march events, got %d", len(rows))
		}
		// Ordered by event date ascending.
		if !rows[0].Event.Date.Equal(date(2026, time.March, 15)) {
			t.Errorf("order: first event date %v", rows[0].Event.Date)
		}
		// The reminder is joined onto its event.
		if rows[0].Reminder == nil {
			t.Fatal("expected joined reminder on renewal event")
		}
		if got := rows[0].Reminder.Offsets; len(got) != 2 || got[0] != 30 || got[1] != 7 {
			t.Errorf("reminder offsets mismatch: %v", got)
		}
		if rows[1].Reminder != nil {
			t.Errorf("expected nil reminder on termination event")
		}
	})

	t.Run("contract filter", func(t *testing.T) {
		rows, err := repo.Query(ctx, user.ID, domain.EventFilter{ContractID: &c1.ID})
		if err != nil {
			t.Fatalf("Query: unexpected error: %v", err)
		}
		if len(rows) != 2 {
			t.Fatalf("expected 2 events for contract, got %d", len(rows))
		}
		for _, r := range rows {
			if r.Event.ContractID != c1.ID {
				t.Errorf("foreign contract leaked: %s", r.Event.ContractID)
			}
		}
	})

	t.Run("type filter case-insensitive", func(t *testing.T) {
		rows, err := repo.Query(ctx, user.ID, domain.EventFilter{Types: []domain.EventType{"TERMINATION"}})
		if err != nil {
			t.Fatalf("Query: unexpected error: %v", err)
		}
		if len(rows) != 1 || rows[0].Event.ID != termination.ID {
			t.Fatalf("expected only the termination event, got %d rows", len(rows))
		}
	})

	t.Run("text search over contract title", func(t *testing.T) {
		rows, err := repo.Query(ctx, user.ID, domain.EventFilter{Text: c2.Title})
		if err != nil {
			t.Fatalf("Query: unexpected error: %v", err)
		}
		if len(rows) != 1 || rows[0].Contract.ID != c2.ID {
			t.Fatalf("expected c2's event, got %d rows", len(rows))
		}
	})

	t.Run("text search matches metacharacters literally", func(t *testing.T) {
		// "%" is not a wildcard in search text; no title contains a
		// literal percent sign, so nothing matches.
		rows, err := repo.Query(ctx, user.ID, domain.EventFilter{Text: "%"})
		if err != nil {
			t.Fatalf("Query: unexpected error: %v", err)
		}
		if len(rows) != 0 {
			t.Fatalf("expected no matches for literal %%, got %d rows", len(rows))
		}
	})

	t.Run("no filter excludes other users", func(t *testing.T) {
		rows, err := repo.Query(ctx, user.ID, domain.EventFilter{})
		if err != nil {
			t.Fatalf("Query: unexpected error: %v", err)
		}
		if len(rows) != 3 {
			t.Fatalf("expected 3 events, got %d", len(rows))
		}
	})
}

func assertIsDomainError(t *testing.T, err error, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got: %v", target, err)
	}
}
