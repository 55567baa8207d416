// Package events implements manual event management and the event query
// layer. Derived events are owned by their terms and only readable here.
package events

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

type eventRepo interface {
	Create(ctx context.Context, contractID uuid.UUID, eventType domain.EventType, date time.Time) (domain.Event, error)
	GetByID(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
	Update(ctx context.Context, eventID uuid.UUID, eventType domain.EventType, date time.Time) (domain.Event, error)
	Delete(ctx context.Context, eventID uuid.UUID) error
	Query(ctx context.Context, userID uuid.UUID, f domain.EventFilter) ([]domain.EventRow, error)
}

type contractRepo interface {
	GetByID(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the event business logic.
type Service struct {
	events    eventRepo
	contracts contractRepo
	log       *slog.Logger
}

// NewService creates a new Events service.
func NewService(log *slog.Logger, events eventRepo, contracts contractRepo) *Service {
	return &Service{
		events:    events,
		contracts: contracts,
		log:       log.With("service", "events"),
	}
}

// AddManual creates a manual event on a contract owned by the calling user.
// The event type label is free-form: unrecognized labels are stored as-is.
func (s *Service) AddManual(ctx context.Context, input AddInput) (domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Event{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Event{}, err
	}

	if _, err := s.contracts.GetByID(ctx, userID, input.ContractID); err != nil {
		return domain.Event{}, fmt.Errorf("get contract: %w", err)
	}

	event, err := s.events.Create(ctx, input.ContractID, input.Type, input.Date)
	if err != nil {
		return domain.Event{}, fmt.Errorf("create event: %w", err)
	}

	s.log.InfoContext(ctx, "manual event added",
		"contract_id", input.ContractID,
		"event_id", event.ID,
		"type", event.Type,
	)

	return event, nil
}

// UpdateManual changes a manual event's type and date. Derived events are
// rejected with domain.ErrValidation: their term drives them.
func (s *Service) UpdateManual(ctx context.Context, input UpdateInput) (domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Event{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Event{}, err
	}

	event, err := s.ownedEvent(ctx, userID, input.EventID)
	if err != nil {
		return domain.Event{}, err
	}
	if event.IsDerived() {
		return domain.Event{}, domain.NewValidationError("event_id",
			"derived events follow their term and cannot be edited directly")
	}

	updated, err := s.events.Update(ctx, input.EventID, input.Type, input.Date)
	if err != nil {
		return domain.Event{}, fmt.Errorf("update event: %w", err)
	}

	return updated, nil
}

// RemoveManual deletes a manual event (its reminder cascades). Derived
// events are rejected; they disappear when their term is cleared.
func (s *Service) RemoveManual(ctx context.Context, eventID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	event, err := s.ownedEvent(ctx, userID, eventID)
	if err != nil {
		return err
	}
	if event.IsDerived() {
		return domain.NewValidationError("event_id",
			"derived events follow their term and cannot be removed directly")
	}

	if err := s.events.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.log.InfoContext(ctx, "manual event removed", "event_id", eventID)
	return nil
}

// Get returns one event of a contract owned by the calling user.
func (s *Service) Get(ctx context.Context, eventID uuid.UUID) (domain.Event, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Event{}, domain.ErrUnauthorized
	}
	return s.ownedEvent(ctx, userID, eventID)
}

// Query returns event rows of the calling user matching the filter, ordered
// by event date ascending. An empty filter returns everything the user owns.
func (s *Service) Query(ctx context.Context, input QueryInput) ([]domain.EventRow, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	filter, err := input.Filter()
	if err != nil {
		return nil, err
	}

	rows, err := s.events.Query(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	return rows, nil
}

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
