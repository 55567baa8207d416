package domain

import (
	"time"

	"github.com/google/uuid"
)

// Reminder configures when notifications should be considered due for an
// event. At most one reminder exists per event (upsert by event id).
//
// A reminder with no recipients is treated as "not configured" for
// scheduling purposes even when Enabled is true — the record is kept as
// stored state and never auto-deleted.
type Reminder struct {
	EventID    uuid.UUID
	Recipients []string
	// Offsets are day counts before the event date, deduplicated, positive,
	// sorted descending so computed fire dates come out chronologically.
	Offsets   []int
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfigured reports whether the reminder produces a fire schedule.
func (r *Reminder) IsConfigured() bool {
	return r != nil && len(r.Recipients) > 0
}

// FireEntry is one computed reminder fire date with its status relative to
// the evaluation time.
type FireEntry struct {
	FireDate   time.Time
	OffsetDays int
	Status     FireStatus
}
