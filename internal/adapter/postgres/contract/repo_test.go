package contract_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pactwatch/pactwatch-backend/internal/adapter/postgres/contract"
	"github.com/pactwatch/pactwatch-backend/internal/adapter/postgres/testhelper"
	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

// newRepo sets up a test DB and returns a ready Repo + pool.
func newRepo(t *testing.T) (*contract.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return contract.New(pool), pool
}

func TestRepo_Create_AndGetByID(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)

	created, err := repo.Create(ctx, user.ID, "Acme MSA", "Acme Corp", "msa")
	if err != nil {
		t.Fatalf("Create: unexpected error: %v", err)
	}
	if created.UserID != user.ID {
		t.Errorf("UserID mismatch: got %s, want %s", created.UserID, user.ID)
	}
	if created.Title != "Acme MSA" {
		t.Errorf("Title mismatch: got %q", created.Title)
	}

	got, err := repo.GetByID(ctx, user.ID, created.ID)
	if err != nil {
		t.Fatalf("GetByID: unexpected error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, created.ID)
	}
	if got.Vendor != "Acme Corp" {
		t.Errorf("Vendor mismatch: got %q", got.Vendor)
	}
}

func TestRepo_GetByID_WrongUser(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	owner := testhelper.SeedUser(t, pool)
	stranger := testhelper.SeedUser(t, pool)
	c := testhelper.SeedContract(t, pool, owner.ID)

	_, err := repo.GetByID(ctx, stranger.ID, c.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)
}

func TestRepo_List_OnlyOwn(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	other := testhelper.SeedUser(t, pool)

	c1 := testhelper.SeedContract(t, pool, user.ID)
	c2 := testhelper.SeedContract(t, pool, user.ID)
	testhelper.SeedContract(t, pool, other.ID)

	got, err := repo.List(ctx, user.ID, 100, 0)
	if err != nil {
		t.Fatalf("List: unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List: expected 2 contracts, got %d", len(got))
	}
	ids := map[uuid.UUID]bool{got[0].ID: true, got[1].ID: true}
	if !ids[c1.ID] || !ids[c2.ID] {
		t.Errorf("List: missing expected contracts, got %v", ids)
	}
}

func TestRepo_Update(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	c := testhelper.SeedContract(t, pool, user.ID)

	updated, err := repo.Update(ctx, user.ID, c.ID, "New Title", "New Vendor", "sow")
	if err != nil {
		t.Fatalf("Update: unexpected error: %v", err)
	}
	if updated.Title != "New Title" || updated.Vendor != "New Vendor" || updated.AgreementType != "sow" {
		t.Errorf("Update: fields not applied: %+v", updated)
	}
	if !updated.UpdatedAt.After(c.UpdatedAt) {
		t.Errorf("Update: updated_at did not advance")
	}
}

func TestRepo_Delete_Cascades(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	user := testhelper.SeedUser(t, pool)
	c := testhelper.SeedContract(t, pool, user.ID)
	event := testhelper.SeedEvent(t, pool, c.ID, domain.EventTypeRenewal, mustDate(t, "2026-03-15"), "renewal_date")
	testhelper.SeedReminder(t, pool, event.ID, []string{"ops@example.com"}, []int{30, 7}, true)

	if err := repo.Delete(ctx, user.ID, c.ID); err != nil {
		t.Fatalf("Delete: unexpected error: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx, `SELECT count(*) FROM events WHERE contract_id = $1`, c.ID).Scan(&count); err != nil {
		t.Fatalf("count events: %v", err)
	}
	if count != 0 {
		t.Errorf("expected events to cascade, %d remain", count)
	}

	err := repo.Delete(ctx, user.ID, c.ID)
	assertIsDomainError(t, err, domain.ErrNotFound)
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

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return parsed
}
