package terms

import (
	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

// ApplyInput holds the parameters for applying a term value to a contract.
// A blank ValueRaw clears the term and its derived event.
type ApplyInput struct {
	ContractID uuid.UUID
	Key        string
	ValueType  domain.ValueType
	ValueRaw   string
	// Status defaults to extracted when empty.
	Status     domain.TermStatus
	Confidence float64
}

// Validate checks all fields and collects all errors.
func (i *ApplyInput) Validate() error {
	var errs []domain.FieldError

	if i.ContractID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contract_id", Message: "required"})
	}
	if i.Key == "" {
		errs = append(errs, domain.FieldError{Field: "key", Message: "required"})
	}
	if i.Status != "" && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be extracted, verified, or manual"})
	}
	if i.Confidence < 0 || i.Confidence > 1 {
		errs = append(errs, domain.FieldError{Field: "confidence", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RemoveInput holds the parameters for removing a term.
type RemoveInput struct {
	ContractID uuid.UUID
	Key        string
}

// Validate checks all fields and collects all errors.
func (i *RemoveInput) Validate() error {
	var errs []domain.FieldError

	if i.ContractID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contract_id", Message: "required"})
	}
	if i.Key == "" {
		errs = append(errs, domain.FieldError{Field: "key", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
