package reminders

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

// ConfigureInput holds the parameters for configuring an event's reminder.
// Offsets arrive as raw strings and are normalized permissively, not rejected.
type ConfigureInput struct {
	EventID    uuid.UUID
	Recipients []string
	Offsets    []string
	Enabled    bool
}

// Validate checks all fields and collects all errors.
func (i *ConfigureInput) Validate() error {
	var errs []domain.FieldError

	if i.EventID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "event_id", Message: "required"})
	}
	if len(i.Recipients) > 50 {
		errs = append(errs, domain.FieldError{Field: "recipients", Message: "max 50 entries"})
	}
	if len(i.Offsets) > 50 {
		errs = append(errs, domain.FieldError{Field: "offsets", Message: "max 50 entries"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ParseOffsets normalizes raw offset entries: whitespace is trimmed,
// non-numeric and non-positive entries are silently dropped, duplicates
// collapse. The result is sorted descending so the fire dates computed from
// it come out chronologically ascending.
func ParseOffsets(raw []string) []int {
	seen := make(map[int]bool, len(raw))
	offsets := make([]int, 0, len(raw))

	for _, entry := range raw {
		n, err := strconv.Atoi(strings.TrimSpace(entry))
		if err != nil || n <= 0 || seen[n] {
			continue
		}
		seen[n] = true
		offsets = append(offsets, n)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(offsets)))
	return offsets
}

// NormalizeRecipients trims entries and drops blanks and duplicates,
// preserving first-encounter order.
func NormalizeRecipients(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	recipients := make([]string, 0, len(raw))

	for _, entry := range raw {
		r := strings.TrimSpace(entry)
		if r == "" || seen[r] {
			continue
		}
		seen[r] = true
		recipients = append(recipients, r)
	}

	return recipients
}
