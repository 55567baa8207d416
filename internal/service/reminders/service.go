// Package reminders implements reminder configuration and fire-schedule
// evaluation for contract events.
package reminders

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
	"github.com/pactwatch/pactwatch-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type reminderRepo interface {
	Upsert(ctx context.Context, rem domain.Reminder) (domain.Reminder, error)
	GetByEventID(ctx context.Context, eventID uuid.UUID) (domain.Reminder, error)
	Delete(ctx context.Context, eventID uuid.UUID) error
	ListDueOn(ctx context.Context, day time.Time) ([]domain.EventRow, error)
}

type eventRepo interface {
	GetByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
}

type contractRepo interface {
	GetByID(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the reminder business logic.
type Service struct {
	reminders reminderRepo
	events    eventRepo
	contracts contractRepo
	log       *slog.Logger
}

// NewService creates a new Reminders service.
func NewService(log *slog.Logger, reminders reminderRepo, events eventRepo, contracts contractRepo) *Service {
	return &Service{
		reminders: reminders,
		events:    events,
		contracts: contracts,
		log:       log.With("service", "reminders"),
	}
}

// Configure inserts or replaces the reminder for an event. Offsets are
// normalized permissively: non-numeric and non-positive entries are dropped,
// duplicates collapse, the rest is stored descending. A configuration with
// no usable offsets or no recipients is still stored.
func (s *Service) Configure(ctx context.Context, input ConfigureInput) (domain.Reminder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Reminder{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Reminder{}, err
	}

	if _, err := s.ownedEvent(ctx, userID, input.EventID); err != nil {
		return domain.Reminder{}, err
	}

	rem := domain.Reminder{
		EventID:    input.EventID,
		Recipients: NormalizeRecipients(input.Recipients),
		Offsets:    ParseOffsets(input.Offsets),
		Enabled:    input.Enabled,
	}

	stored, err := s.reminders.Upsert(ctx, rem)
	if err != nil {
		return domain.Reminder{}, fmt.Errorf("configure reminder: %w", err)
	}

	s.log.InfoContext(ctx, "reminder configured",
		"event_id", stored.EventID,
		"offsets", stored.Offsets,
		"recipients", len(stored.Recipients),
		"enabled", stored.Enabled,
	)

	return stored, nil
}

// GetForEvent returns the reminder configured for an event.
func (s *Service) GetForEvent(ctx context.Context, eventID uuid.UUID) (domain.Reminder, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Reminder{}, domain.ErrUnauthorized
	}

	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return domain.Reminder{}, err
	}

	return s.reminders.GetByEventID(ctx, eventID)
}

// Remove deletes the reminder for an event. Removal is an explicit user
// action; empty-recipient or stale reminders are never removed automatically.
func (s *Service) Remove(ctx context.Context, eventID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if _, err := s.ownedEvent(ctx, userID, eventID); err != nil {
		return err
	}

	if err := s.reminders.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("remove reminder: %w", err)
	}

	s.log.InfoContext(ctx, "reminder removed", "event_id", eventID)
	return nil
}

// DueOn returns event rows whose enabled, configured reminders fire on the
// given calendar day, across all users. Used by the one-shot evaluation
// command, not the user-facing API.
func (s *Service) DueOn(ctx context.Context, day time.Time) ([]domain.EventRow, error) {
	rows, err := s.reminders.ListDueOn(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("list due reminders: %w", err)
	}
	return rows, nil
}

// ownedEvent loads the event and verifies the calling user owns its contract.
func (s *Service) ownedEvent(ctx context.Context, userID, eventID uuid.UUID) (domain.Event, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return domain.Event{}, fmt.Errorf("get event: %w", err)
	}
	if _, err := s.contracts.GetByID(ctx, userID, event.ContractID); err != nil {
		return domain.Event{}, fmt.Errorf("get contract: %w", err)
	}
	return event, nil
}
