package terms

import (
	"context"
	"fmt"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
	"github.com/pactwatch/pactwatch-backend/pkg/ctxutil"
)

// ApplyResult is the outcome of applying a term value.
type ApplyResult struct {
	// Removed is true when a blank value cleared the term.
	Removed bool
	Term    domain.Term
	// Event is the derived event kept in sync with the term, nil when the
	// key does not imply one or the term was removed.
	Event *domain.Event
}

// Apply validates and upserts a term value and keeps the derived event for
// (contract, key) in sync, all inside one transaction holding the contract
// row lock. A blank value clears the term and its derived event; the
// operation is idempotent either way.
//
// Validation failures reject the whole call before any write. A concurrent
// writer on the same contract surfaces as domain.ErrConflict.
func (s *Service) Apply(ctx context.Context, input ApplyInput) (ApplyResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return ApplyResult{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return ApplyResult{}, err
	}

	value, err := s.catalog.Validate(input.Key, input.ValueType, input.ValueRaw)
	if err != nil {
		return ApplyResult{}, err
	}

	// Blank value means removal, not an error.
	if value == nil {
		if err := s.remove(ctx, userID, input.ContractID, input.Key, true); err != nil {
			return ApplyResult{}, err
		}
		return ApplyResult{Removed: true}, nil
	}

	spec, _ := s.catalog.Lookup(input.Key)

	status := input.Status
	if status == "" {
		status = domain.TermStatusExtracted
	}

	term := domain.Term{
		ContractID:      input.ContractID,
		Key:             input.Key,
		Name:            spec.Name,
		ValueType:       spec.ValueType,
		ValueRaw:        input.ValueRaw,
		ValueNormalized: value.Normalized(),
		Status:          status,
		Confidence:      input.Confidence,
	}
	if dv, ok := value.(domain.DateValue); ok {
		d := dv.Date
		term.ValueDate = &d
	}

	var result ApplyResult
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.contracts.GetByIDForUpdate(ctx, userID, input.ContractID); err != nil {
			return fmt.Errorf("lock contract: %w", err)
		}

		stored, err := s.terms.Upsert(ctx, term)
		if err != nil {
			return fmt.Errorf("upsert term: %w", err)
		}
		result.Term = stored

		template, implies := s.catalog.ImpliesEvent(input.Key)
		if !implies {
			return nil
		}
		if term.ValueDate == nil {
			// A non-date value cannot drive an event; the catalog only maps
			// date keys, so this branch means a catalog misconfiguration.
			s.log.WarnContext(ctx, "event-implying key with non-date value",
				"key", input.Key, "value_type", spec.ValueType)
			return nil
		}

		event, err := s.events.UpsertDerived(ctx, input.ContractID, input.Key, template.EventType, *term.ValueDate)
		if err != nil {
			return fmt.Errorf("upsert derived event: %w", err)
		}
		result.Event = &event
		return nil
	})
	if err != nil {
		return ApplyResult{}, err
	}

	s.log.InfoContext(ctx, "term applied",
		"contract_id", input.ContractID,
		"key", input.Key,
		"derived_event", result.Event != nil,
	)

	return result, nil
}
