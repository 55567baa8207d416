package terms

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
	"github.com/pactwatch/pactwatch-backend/pkg/ctxutil"
)

// ListByContract returns all terms of a contract owned by the calling user,
// ordered by key.
func (s *Service) ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Term, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if _, err := s.contracts.GetByID(ctx, userID, contractID); err != nil {
		return nil, fmt.Errorf("get contract: %w", err)
	}

	terms, err := s.terms.ListByContract(ctx, contractID)
	if err != nil {
		return nil, fmt.Errorf("list terms: %w", err)
	}
	return terms, nil
}

// GetByKey returns a single term of a contract owned by the calling user.
func (s *Service) GetByKey(ctx context.Context, contractID uuid.UUID, key string) (domain.Term, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Term{}, domain.ErrUnauthorized
	}

	if _, err := s.contracts.GetByID(ctx, userID, contractID); err != nil {
		return domain.Term{}, fmt.Errorf("get contract: %w", err)
	}

	return s.terms.GetByKey(ctx, contractID, key)
}
