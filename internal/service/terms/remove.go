package terms

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
	"github.com/pactwatch/pactwatch-backend/pkg/ctxutil"
)

// Remove deletes a term and its derived event (with the event's reminder
// cascading) in one transaction. Removing a term that does not exist is
// domain.ErrNotFound.
func (s *Service) Remove(ctx context.Context, input RemoveInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	return s.remove(ctx, userID, input.ContractID, input.Key, false)
}

// remove clears (contract, key): term row plus derived event, transactional,
// under the contract row lock. With ignoreMissing the term's absence is not
// an error (blank-value apply is idempotent).
func (s *Service) remove(ctx context.Context, userID, contractID uuid.UUID, key string, ignoreMissing bool) error {
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.contracts.GetByIDForUpdate(ctx, userID, contractID); err != nil {
			return fmt.Errorf("lock contract: %w", err)
		}

		if err := s.terms.Delete(ctx, contractID, key); err != nil {
			if ignoreMissing && errors.Is(err, domain.ErrNotFound) {
				// Nothing to clear; still drop a derived event that might
				// remain from an earlier catalog configuration.
				return s.events.DeleteDerived(ctx, contractID, key)
			}
			return fmt.Errorf("delete term: %w", err)
		}

		if err := s.events.DeleteDerived(ctx, contractID, key); err != nil {
			return fmt.Errorf("delete derived event: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "term removed", "contract_id", contractID, "key", key)
	return nil
}
