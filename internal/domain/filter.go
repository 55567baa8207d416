package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Month identifies a calendar month for month-bounded event queries.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("parse month %q: %w", s, ErrValidation)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Bounds returns the half-open interval [first day of m, first day of the
// next month) at UTC midnight. An event matches the month iff
// from <= date < to, which is equivalent to the inclusive
// [first_day, last_day] range over calendar dates.
func (m Month) Bounds() (from, to time.Time) {
	from = time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, 0)
	return from, to
}

// Contains reports whether the calendar date of t falls inside the month.
func (m Month) Contains(t time.Time) bool {
	from, to := m.Bounds()
	d := DateOnly(t)
	return !d.Before(from) && d.Before(to)
}

// EventFilter selects events for the query layer.
//
// An empty Types slice means "all" and short-circuits type filtering.
// Text matches case-insensitively against a composite of contract title,
// vendor, event type and derived_from_term_key; empty text always matches.
type EventFilter struct {
	ContractID *uuid.UUID
	Month      *Month
	Types      []EventType
	Text       string
}
