// Package contracts implements contract lifecycle management. A contract is
// the ownership boundary: terms, events, and reminders all hang off one and
// are removed with it.
package contracts

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
	"github.com/pactwatch/pactwatch-backend/pkg/ctxutil"
)

type contractRepo interface {
	Create(ctx context.Context, userID uuid.UUID, title, vendor, agreementType string) (domain.Contract, error)
	GetByID(ctx context.Context, userID, contractID uuid.UUID) (domain.Contract, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Contract, error)
	Update(ctx context.Context, userID, contractID uuid.UUID, title, vendor, agreementType string) (domain.Contract, error)
	Delete(ctx context.Context, userID, contractID uuid.UUID) error
}

// Service implements the contract business logic.
type Service struct {
	contracts contractRepo
	log       *slog.Logger
}

// NewService creates a new Contracts service.
func NewService(log *slog.Logger, contracts contractRepo) *Service {
	return &Service{
		contracts: contracts,
		log:       log.With("service", "contracts"),
	}
}

// Create registers a new contract for the calling user.
func (s *Service) Create(ctx context.Context, input CreateInput) (domain.Contract, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Contract{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Contract{}, err
	}

	contract, err := s.contracts.Create(ctx, userID, input.Title, input.Vendor, input.AgreementType)
	if err != nil {
		return domain.Contract{}, fmt.Errorf("create contract: %w", err)
	}

	s.log.InfoContext(ctx, "contract created", "contract_id", contract.ID, "title", contract.Title)
	return contract, nil
}

// Get returns one contract of the calling user.
func (s *Service) Get(ctx context.Context, contractID uuid.UUID) (domain.Contract, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Contract{}, domain.ErrUnauthorized
	}
	return s.contracts.GetByID(ctx, userID, contractID)
}

// List returns the calling user's contracts, newest first.
func (s *Service) List(ctx context.Context, input ListInput) ([]domain.Contract, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = 50
	}

	contracts, err := s.contracts.List(ctx, userID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	return contracts, nil
}

// Update replaces the contract metadata.
func (s *Service) Update(ctx context.Context, input UpdateInput) (domain.Contract, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Contract{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Contract{}, err
	}

	contract, err := s.contracts.Update(ctx, userID, input.ContractID, input.Title, input.Vendor, input.AgreementType)
	if err != nil {
		return domain.Contract{}, fmt.Errorf("update contract: %w", err)
	}
	return contract, nil
}

// Delete removes a contract with everything attached to it (terms, events,
// reminders cascade in the store).
func (s *Service) Delete(ctx context.Context, contractID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.contracts.Delete(ctx, userID, contractID); err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}

	s.log.InfoContext(ctx, "contract deleted", "contract_id", contractID)
	return nil
}
