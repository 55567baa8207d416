package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
	"github.com/pactwatch/pactwatch-backend/internal/service/reminders"
)

// reminderService defines the minimal interface needed by ReminderHandler.
type reminderService interface {
	Configure(ctx context.Context, input reminders.ConfigureInput) (domain.Reminder, error)
	GetForEvent(ctx context.Context, eventID uuid.UUID) (domain.Reminder, error)
	Remove(ctx context.Context, eventID uuid.UUID) error
}

// eventGetter resolves the event a reminder is attached to, for schedule
// rendering.
type eventGetter interface {
	Get(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
}

// ReminderHandler serves reminder REST endpoints.
type ReminderHandler struct {
	svc    reminderService
	events eventGetter
	log    *slog.Logger
}

// NewReminderHandler creates a ReminderHandler.
func NewReminderHandler(svc reminderService, events eventGetter, logger *slog.Logger) *ReminderHandler {
	return &ReminderHandler{svc: svc, events: events, log: logger.With("handler", "reminders")}
}

type configureReminderRequest struct {
	Recipients []string `json:"recipients"`
	// Offsets are day counts before the event date. Strings are parsed
	// permissively: non-numeric and non-positive entries are dropped.
	Offsets []string `json:"offsets"`
	Enabled bool     `json:"enabled"`
}

type reminderResponse struct {
	EventID    string    `json:"eventId"`
	Recipients []string  `json:"recipients"`
	Offsets    []int     `json:"offsets"`
	Enabled    bool      `json:"enabled"`
	Configured bool      `json:"configured"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type fireEntryResponse struct {
	FireDate   string `json:"fireDate"`
	OffsetDays int    `json:"offsetDays"`
	Status     string `json:"status"`
}

type reminderScheduleResponse struct {
	Reminder reminderResponse    `json:"reminder"`
	Schedule []fireEntryResponse `json:"schedule"`
}

// Configure handles PUT /events/{id}/reminder.
func (h *ReminderHandler) Configure(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req configureReminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	reminder, err := h.svc.Configure(r.Context(), reminders.ConfigureInput{
		EventID:    eventID,
		Recipients: req.Recipients,
		Offsets:    req.Offsets,
		Enabled:    req.Enabled,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReminderResponse(reminder))
}

// Get handles GET /events/{id}/reminder. The response includes the computed
// fire schedule relative to the current date.
func (h *ReminderHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	reminder, err := h.svc.GetForEvent(r.Context(), eventID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	event, err := h.events.Get(r.Context(), eventID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	schedule := reminders.Schedule(event.Date, &reminder, time.Now())

	resp := reminderScheduleResponse{
		Reminder: toReminderResponse(reminder),
		Schedule: make([]fireEntryResponse, 0, len(schedule.Entries)),
	}
	for _, e := range schedule.Entries {
		resp.Schedule = append(resp.Schedule, toFireEntryResponse(e))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Remove handles DELETE /events/{id}/reminder.
func (h *ReminderHandler) Remove(w http.ResponseWriter, r *http.Request) {
	eventID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Remove(r.Context(), eventID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toReminderResponse(rem domain.Reminder) reminderResponse {
	recipients := rem.Recipients
	if recipients == nil {
		recipients = []string{}
	}
	offsets := rem.Offsets
	if offsets == nil {
		offsets = []int{}
	}
	return reminderResponse{
		EventID:    rem.EventID.String(),
		Recipients: recipients,
		Offsets:    offsets,
		Enabled:    rem.Enabled,
		Configured: rem.IsConfigured(),
		CreatedAt:  rem.CreatedAt,
		UpdatedAt:  rem.UpdatedAt,
	}
}

func toFireEntryResponse(e domain.FireEntry) fireEntryResponse {
	return fireEntryResponse{
		FireDate:   e.FireDate.Format("2006-01-02"),
		OffsetDays: e.OffsetDays,
		Status:     e.Status.String(),
	}
}
