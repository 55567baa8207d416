package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
	"github.com/pactwatch/pactwatch-backend/internal/service/events"
)

// eventService defines the minimal interface needed by EventHandler.
type eventService interface {
	AddManual(ctx context.Context, input events.AddInput) (domain.Event, error)
	UpdateManual(ctx context.Context, input events.UpdateInput) (domain.Event, error)
	RemoveManual(ctx context.Context, eventID uuid.UUID) error
	Get(ctx context.Context, eventID uuid.UUID) (domain.Event, error)
	Query(ctx context.Context, input events.QueryInput) ([]domain.EventRow, error)
}

// EventHandler serves calendar event REST endpoints.
type EventHandler struct {
	svc eventService
	log *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{svc: svc, log: logger.With("handler", "events")}
}

type eventRequest struct {
	ContractID string `json:"contractId,omitempty"`
	Type       string `json:"type"`
	Date       string `json:"date"`
}

type eventResponse struct {
	ID                 string    `json:"id"`
	ContractID         string    `json:"contractId"`
	Type               string    `json:"type"`
	Date               string    `json:"date"`
	DerivedFromTermKey *string   `json:"derivedFromTermKey,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

type eventRowResponse struct {
	Event    eventResponse     `json:"event"`
	Contract contractResponse  `json:"contract"`
	Reminder *reminderResponse `json:"reminder,omitempty"`
}

// Add handles POST /events.
func (h *EventHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contractID, err := uuid.Parse(req.ContractID)
	if err != nil {
		writeError(w, http.StatusBadRequest, "contractId must be a UUID")
		return
	}
	date, ok := parseDate(w, req.Date)
	if !ok {
		return
	}

	event, err := h.svc.AddManual(r.Context(), events.AddInput{
		ContractID: contractID,
		Type:       domain.EventType(req.Type),
		Date:       date,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(event))
}

// Get handles GET /events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	event, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(event))
}

// Update handles PUT /events/{id}. Derived events are rejected.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req eventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	date, ok := parseDate(w, req.Date)
	if !ok {
		return
	}

	event, err := h.svc.UpdateManual(r.Context(), events.UpdateInput{
		EventID: id,
		Type:    domain.EventType(req.Type),
		Date:    date,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(event))
}

// Remove handles DELETE /events/{id}. Derived events are rejected.
func (h *EventHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.RemoveManual(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Query handles GET /events?contractId=&month=&type=&q=.
// The type parameter repeats for multiple event types.
func (h *EventHandler) Query(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := events.QueryInput{
		Month: q.Get("month"),
		Types: q["type"],
		Text:  q.Get("q"),
	}
	if v := q.Get("contractId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "contractId must be a UUID")
			return
		}
		input.ContractID = &id
	}

	rows, err := h.svc.Query(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]eventRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEventRowResponse(row))
	}
	writeJSON(w, http.StatusOK, map[string]any{"events": out})
}

func toEventResponse(e domain.Event) eventResponse {
	return eventResponse{
		ID:                 e.ID.String(),
		ContractID:         e.ContractID.String(),
		Type:               e.Type.String(),
		Date:               e.Date.Format("2006-01-02"),
		DerivedFromTermKey: e.DerivedFromTermKey,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func toEventRowResponse(row domain.EventRow) eventRowResponse {
	resp := eventRowResponse{
		Event:    toEventResponse(row.Event),
		Contract: toContractResponse(row.Contract),
	}
	if row.Reminder != nil {
		rem := toReminderResponse(*row.Reminder)
		resp.Reminder = &rem
	}
	return resp
}

// parseDate parses a YYYY-MM-DD date, writing a 400 on failure.
func parseDate(w http.ResponseWriter, raw string) (time.Time, bool) {
	if raw == "" {
		writeError(w, http.StatusBadRequest, "date is required")
		return time.Time{}, false
	}
	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return time.Time{}, false
	}
	return date, true
}
