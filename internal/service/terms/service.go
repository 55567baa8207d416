// Package terms implements term application and the event derivation engine:
// applying a term value keeps the derived calendar event for the same
// (contract, key) in sync within one transaction.
package terms

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
	"github.com/pactwatch/pactwatch-backend/internal/registry"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type termRepo interface {
	Upsert(ctx context.Context, t domain.Term) (domain.Term, error)
	GetByKey(ctx context.Context, contractID uuid.UUID, key string) (domain.Term, error)
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Term, error)
	Delete(ctx context.Context, contractID uuid.UUID, key string) error
}

type eventRepo interface {
	UpsertDerived(ctx context.Context, contractID uuid.UUID, termKey string, eventType domain.EventType, date time.Time) (domain.Event, error)
	DeleteDerived(ctx context.Context, contractID uuid.UUID, termKey string) error
}

type contractRepo interface {
	GetByID(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error)
	// GetByIDForUpdate locks the contract row; term application for one
	// contract is serialized through it.
	GetByIDForUpdate(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error)
}

type catalog interface {
	Lookup(key string) (registry.KeySpec, bool)
	ImpliesEvent(key string) (registry.EventTemplate, bool)
	Validate(key string, valueType domain.ValueType, raw string) (domain.TermValue, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the term business logic.
type Service struct {
	terms     termRepo
	events    eventRepo
	contracts contractRepo
	catalog   catalog
	tx        txManager
	log       *slog.Logger
}

// NewService creates a new Terms service.
func NewService(log *slog.Logger, terms termRepo, events eventRepo, contracts contractRepo, catalog catalog, tx txManager) *Service {
	return &Service{
		terms:     terms,
		events:    events,
		contracts: contracts,
		catalog:   catalog,
		tx:        tx,
		log:       log.With("service", "terms"),
	}
}
