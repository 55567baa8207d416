package domain

// EventRow is a query-layer row: an event joined with the metadata of its
// owning contract and the reminder configured for it (nil when absent).
// All events of one contract carry identical contract metadata — the query
// layer guarantees it, consumers do not re-validate.
type EventRow struct {
	Event    Event
	Contract Contract
	Reminder *Reminder
}
