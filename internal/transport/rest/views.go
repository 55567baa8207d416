package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
	"github.com/pactwatch/pactwatch-backend/internal/service/events"
	"github.com/pactwatch/pactwatch-backend/internal/service/planner"
)

// viewEventSource feeds rows into the view pipeline.
type viewEventSource interface {
	Query(ctx context.Context, input events.QueryInput) ([]domain.EventRow, error)
}

// ViewHandler serves the grouped planner/month-review view.
type ViewHandler struct {
	events viewEventSource
	log    *slog.Logger
}

// NewViewHandler creates a ViewHandler.
func NewViewHandler(events viewEventSource, logger *slog.Logger) *ViewHandler {
	return &ViewHandler{events: events, log: logger.With("handler", "views")}
}

type viewEventItemResponse struct {
	Event     eventResponse       `json:"event"`
	DaysUntil int                 `json:"daysUntil"`
	Reminder  []fireEntryResponse `json:"reminder"`
}

type viewGroupResponse struct {
	Contract contractResponse        `json:"contract"`
	Events   []viewEventItemResponse `json:"events"`
}

type viewResponse struct {
	Groups      []viewGroupResponse `json:"groups"`
	TotalEvents int                 `json:"totalEvents"`
}

// Render handles GET /views/events?month=&contractId=&type=&q=&sort=&expiring=.
// The month, contract, and type filters run in the query layer; text search,
// the expiring-only predicate, sorting, and grouping run in the render
// pipeline.
func (h *ViewHandler) Render(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	sortKey := planner.SortKey(q.Get("sort"))
	if sortKey != "" && !sortKey.IsValid() {
		writeError(w, http.StatusBadRequest, "sort must be one of date, type, contract")
		return
	}

	input := events.QueryInput{
		Month: q.Get("month"),
		Types: q["type"],
	}
	if v := q.Get("contractId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "contractId must be a UUID")
			return
		}
		input.ContractID = &id
	}

	rows, err := h.events.Query(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	view := planner.RenderView(rows, planner.Options{
		Search:       q.Get("q"),
		ExpiringOnly: q.Get("expiring") == "true",
		Sort:         sortKey,
		Now:          time.Now(),
	})

	writeJSON(w, http.StatusOK, toViewResponse(view))
}

func toViewResponse(view planner.View) viewResponse {
	resp := viewResponse{
		Groups:      make([]viewGroupResponse, 0, len(view.Groups)),
		TotalEvents: view.TotalEvents,
	}
	for _, g := range view.Groups {
		group := viewGroupResponse{
			Contract: toContractResponse(g.Contract),
			Events:   make([]viewEventItemResponse, 0, len(g.Events)),
		}
		for _, item := range g.Events {
			entries := make([]fireEntryResponse, 0, len(item.Reminder.Entries))
			for _, e := range item.Reminder.Entries {
				entries = append(entries, toFireEntryResponse(e))
			}
			group.Events = append(group.Events, viewEventItemResponse{
				Event:     toEventResponse(item.Event),
				DaysUntil: item.DaysUntil,
				Reminder:  entries,
			})
		}
		resp.Groups = append(resp.Groups, group)
	}
	return resp
}
