// Package planner renders event rows into the grouped monthly-review and
// planner views. Everything here is pure: the output depends only on the
// input rows and options, so the same query renders identically every time.
package planner

import (
	"sort"
	"strings"
	"time"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
	"github.com/pactwatch/pactwatch-backend/internal/service/reminders"
)

// SortKey selects the flat ordering applied before grouping.
type SortKey string

const (
	SortKeyDate     SortKey = "date"
	SortKeyType     SortKey = "type"
	SortKeyContract SortKey = "contract"
)

func (k SortKey) IsValid() bool {
	switch k {
	case SortKeyDate, SortKeyType, SortKeyContract:
		return true
	}
	return false
}

// Options controls the render pipeline. Now is used only for relative-day
// display and reminder fire statuses, never for filtering.
type Options struct {
	Search       string
	ExpiringOnly bool
	// Sort defaults to date when empty.
	Sort SortKey
	Now  time.Time
}

// EventItem is one event in a rendered group.
type EventItem struct {
	Event domain.Event
	// DaysUntil is the whole-day distance from Now's calendar date to the
	// event date; negative for past events.
	DaysUntil int
	Reminder  reminders.ScheduleResult
}

// Group is all rendered events of one contract. Contract metadata comes from
// the group's first event row.
type Group struct {
	Contract domain.Contract
	Events   []EventItem
}

// View is the rendered output.
type View struct {
	Groups      []Group
	TotalEvents int
}

// RenderView runs the filter/sort/group pipeline:
//
//  1. drop rows failing the search text or the expiring-only predicate,
//  2. stable-sort the flat list by the sort key,
//  3. partition by contract preserving first-encounter order of the sorted
//     list,
//  4. order events inside each group by date ascending (stable).
//
// The output is deterministic for a given input order.
func RenderView(rows []domain.EventRow, opts Options) View {
	sortKey := opts.Sort
	if sortKey == "" {
		sortKey = SortKeyDate
	}

	filtered := make([]domain.EventRow, 0, len(rows))
	for _, row := range rows {
		if opts.ExpiringOnly && !row.Event.Type.IsExpiring() {
			continue
		}
		if !matchesSearch(row, opts.Search) {
			continue
		}
		filtered = append(filtered, row)
	}

	sortFlat(filtered, sortKey)

	groupIdx := make(map[string]int)
	groups := make([]Group, 0)
	for _, row := range filtered {
		key := row.Contract.ID.String()
		idx, ok := groupIdx[key]
		if !ok {
			idx = len(groups)
			groupIdx[key] = idx
			groups = append(groups, Group{Contract: row.Contract})
		}
		groups[idx].Events = append(groups[idx].Events, EventItem{
			Event:     row.Event,
			DaysUntil: daysUntil(opts.Now, row.Event.Date),
			Reminder:  reminders.Schedule(row.Event.Date, row.Reminder, opts.Now),
		})
	}

	total := 0
	for i := range groups {
		events := groups[i].Events
		sort.SliceStable(events, func(a, b int) bool {
			return events[a].Event.Date.Before(events[b].Event.Date)
		})
		total += len(events)
	}

	return View{Groups: groups, TotalEvents: total}
}

// matchesSearch reports whether the row matches the free-text search against
// the composite of contract title, vendor, event type, and the source term
// key. Empty search matches everything; comparison is case-insensitive.
func matchesSearch(row domain.EventRow, search string) bool {
	needle := domain.NormalizeText(search)
	if needle == "" {
		return true
	}

	haystacks := []string{
		row.Contract.Title,
		row.Contract.Vendor,
		string(row.Event.Type),
	}
	if row.Event.DerivedFromTermKey != nil {
		haystacks = append(haystacks, *row.Event.DerivedFromTermKey)
	}

	for _, h := range haystacks {
		if strings.Contains(domain.NormalizeText(h), needle) {
			return true
		}
	}
	return false
}

func sortFlat(rows []domain.EventRow, key SortKey) {
	switch key {
	case SortKeyType:
		sort.SliceStable(rows, func(a, b int) bool {
			return strings.ToLower(string(rows[a].Event.Type)) < strings.ToLower(string(rows[b].Event.Type))
		})
	case SortKeyContract:
		sort.SliceStable(rows, func(a, b int) bool {
			return domain.NormalizeText(rows[a].Contract.Title) < domain.NormalizeText(rows[b].Contract.Title)
		})
	default:
		sort.SliceStable(rows, func(a, b int) bool {
			return rows[a].Event.Date.Before(rows[b].Event.Date)
		})
	}
}

func daysUntil(now, eventDate time.Time) int {
	from := domain.DateOnly(now)
	to := domain.DateOnly(eventDate)
	return int(to.Sub(from).Hours() / 24)
}
