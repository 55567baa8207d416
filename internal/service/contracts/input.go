package contracts

import (
	"strings"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

// CreateInput holds the parameters for registering a contract.
type CreateInput struct {
	Title         string
	Vendor        string
	AgreementType string
}

// Validate checks all fields and collects all errors.
func (i *CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > 500 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 500 characters"})
	}
	if len(i.Vendor) > 500 {
		errs = append(errs, domain.FieldError{Field: "vendor", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for updating contract metadata.
type UpdateInput struct {
	ContractID    uuid.UUID
	Title         string
	Vendor        string
	AgreementType string
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ContractID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contract_id", Message: "required"})
	}
	if strings.TrimSpace(i.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if len(i.Title) > 500 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 500 characters"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ListInput holds pagination for contract listing.
type ListInput struct {
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i *ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > 200 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
