package reminders

import (
	"time"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
)

// ScheduleResult is the computed fire schedule of one reminder.
type ScheduleResult struct {
	// Configured is false when the reminder is absent or has no recipients.
	// An unconfigured reminder has an empty schedule regardless of offsets.
	Configured bool
	Entries    []domain.FireEntry
}

// Schedule computes the fire schedule of a reminder against an event date.
// Pure: the result depends only on the arguments. Offsets are assumed
// normalized (positive, deduplicated, descending), so entries come out in
// chronological fire-date order.
//
// Entry status relative to the calendar date of now: pending (fire date
// ahead), due (fire date is today), past (fire date behind). A disabled
// reminder keeps its entries but marks every one disabled.
func Schedule(eventDate time.Time, rem *domain.Reminder, now time.Time) ScheduleResult {
	if !rem.IsConfigured() {
		return ScheduleResult{Configured: false, Entries: []domain.FireEntry{}}
	}

	today := domain.DateOnly(now)
	event := domain.DateOnly(eventDate)

	entries := make([]domain.FireEntry, 0, len(rem.Offsets))
	for _, offset := range rem.Offsets {
		fireDate := event.AddDate(0, 0, -offset)

		status := domain.FireStatusPending
		switch {
		case !rem.Enabled:
			status = domain.FireStatusDisabled
		case fireDate.Equal(today):
			status = domain.FireStatusDue
		case fireDate.Before(today):
			status = domain.FireStatusPast
		}

		entries = append(entries, domain.FireEntry{
			FireDate:   fireDate,
			OffsetDays: offset,
			Status:     status,
		})
	}

	return ScheduleResult{Configured: true, Entries: entries}
}
