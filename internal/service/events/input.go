package events

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

// AddInput holds the parameters for adding a manual event.
type AddInput struct {
	ContractID uuid.UUID
	Type       domain.EventType
	Date       time.Time
}

// Validate checks all fields and collects all errors.
func (i *AddInput) Validate() error {
	var errs []domain.FieldError

	if i.ContractID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contract_id", Message: "required"})
	}
	if i.Type == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateInput holds the parameters for updating a manual event.
type UpdateInput struct {
	EventID uuid.UUID
	Type    domain.EventType
	Date    time.Time
}

// Validate checks all fields and collects all errors.
func (i *UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if i.Type == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// QueryInput holds the raw, transport-level event query parameters.
type QueryInput struct {
	ContractID *uuid.UUID
	// Month is "YYYY-MM"; empty means no month bound.
	Month string
	// Types is the event-type set; empty means all types.
	Types []string
	Text  string
}

// Filter converts the input into a domain.EventFilter.
// A malformed month is domain.ErrValidation.
func (i *QueryInput) Filter() (domain.EventFilter, error) {
	filter := domain.EventFilter{
		ContractID: i.ContractID,
		Text:       i.Text,
	}

	if i.Month != "" {
		m, err := domain.ParseMonth(i.Month)
		if err != nil {
			return domain.EventFilter{}, domain.NewValidationError("month", "must be YYYY-MM")
		}
		filter.Month = &m
	}

	for _, t := range i.Types {
		if t == "" {
			continue
		}
		// "all" disables type filtering entirely, whatever else is listed.
		if strings.EqualFold(t, "all") {
			filter.Types = nil
			break
		}
		filter.Types = append(filter.Types, domain.EventType(t))
	}

	return filter, nil
}
