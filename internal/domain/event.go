package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EventType labels a calendar event. The type is free-form: unrecognized
// labels are accepted as-is, but a fixed subset is recognized for
// classification (e.g. the "expiring" predicate).
type EventType string

const (
	EventTypeRenewal     EventType = "renewal"
	EventTypeTermination EventType = "termination"
	EventTypeAutoOptOut  EventType = "auto_opt_out"
	EventTypeEffective   EventType = "effective"
	EventTypeReview      EventType = "review"
)

func (t EventType) String() string { return string(t) }

// IsRecognized reports whether the type belongs to the fixed recognized subset.
func (t EventType) IsRecognized() bool {
	switch EventType(strings.ToLower(string(t))) {
	case EventTypeRenewal, EventTypeTermination, EventTypeAutoOptOut,
		EventTypeEffective, EventTypeReview:
		return true
	}
	return false
}

// IsExpiring reports whether the type counts toward the "expiring-only"
// predicate. Comparison is case-insensitive.
func (t EventType) IsExpiring() bool {
	switch EventType(strings.ToLower(string(t))) {
	case EventTypeRenewal, EventTypeTermination, EventTypeAutoOptOut:
		return true
	}
	return false
}

// Event is a calendar event owned by a contract. A derived event's lifecycle
// is bound to the term named by DerivedFromTermKey: the term's date value
// drives the event date, and clearing the term removes the event. A manual
// event (nil DerivedFromTermKey) is independent of any term.
type Event struct {
	ID                 uuid.UUID
	ContractID         uuid.UUID
	Type               EventType
	Date               time.Time // calendar date at UTC midnight
	DerivedFromTermKey *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsDerived reports whether the event is maintained from a term value.
func (e *Event) IsDerived() bool {
	return e.DerivedFromTermKey != nil && *e.DerivedFromTermKey != ""
}

// DateOnly truncates t to a calendar date at UTC midnight.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
