package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
	"github.com/pactwatch/pactwatch-backend/internal/service/terms"
)

// termService defines the minimal interface needed by TermHandler.
type termService interface {
	Apply(ctx context.Context, input terms.ApplyInput) (terms.ApplyResult, error)
	Remove(ctx context.Context, input terms.RemoveInput) error
	ListByContract(ctx context.Context, contractID uuid.UUID) ([]domain.Term, error)
	GetByKey(ctx context.Context, contractID uuid.UUID, key string) (domain.Term, error)
}

// TermHandler serves contract term REST endpoints.
type TermHandler struct {
	svc termService
	log *slog.Logger
}

// NewTermHandler creates a TermHandler.
func NewTermHandler(svc termService, logger *slog.Logger) *TermHandler {
	return &TermHandler{svc: svc, log: logger.With("handler", "terms")}
}

type applyTermRequest struct {
	ValueType  string  `json:"valueType"`
	Value      string  `json:"value"`
	Status     string  `json:"status,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

type termResponse struct {
	Key             string    `json:"key"`
	Name            string    `json:"name"`
	ValueType       string    `json:"valueType"`
	ValueRaw        string    `json:"valueRaw"`
	ValueNormalized string    `json:"valueNormalized"`
	ValueDate       string    `json:"valueDate,omitempty"`
	Status          string    `json:"status"`
	Confidence      float64   `json:"confidence"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type applyTermResponse struct {
	Removed bool           `json:"removed"`
	Term    *termResponse  `json:"term,omitempty"`
	Event   *eventResponse `json:"event,omitempty"`
}

// Apply handles PUT /contracts/{id}/terms/{key}.
// A blank value removes the term and its derived event.
func (h *TermHandler) Apply(w http.ResponseWriter, r *http.Request) {
	contractID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req applyTermRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.Apply(r.Context(), terms.ApplyInput{
		ContractID: contractID,
		Key:        r.PathValue("key"),
		ValueType:  domain.ValueType(req.ValueType),
		ValueRaw:   req.Value,
		Status:     domain.TermStatus(req.Status),
		Confidence: req.Confidence,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := applyTermResponse{Removed: result.Removed}
	if !result.Removed {
		t := toTermResponse(result.Term)
		resp.Term = &t
	}
	if result.Event != nil {
		e := toEventResponse(*result.Event)
		resp.Event = &e
	}
	writeJSON(w, http.StatusOK, resp)
}

// List handles GET /contracts/{id}/terms.
func (h *TermHandler) List(w http.ResponseWriter, r *http.Request) {
	contractID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	list, err := h.svc.ListByContract(r.Context(), contractID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]termResponse, 0, len(list))
	for _, t := range list {
		out = append(out, toTermResponse(t))
	}
	writeJSON(w, http.StatusOK, map[string]any{"terms": out})
}

// Get handles GET /contracts/{id}/terms/{key}.
func (h *TermHandler) Get(w http.ResponseWriter, r *http.Request) {
	contractID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	term, err := h.svc.GetByKey(r.Context(), contractID, r.PathValue("key"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTermResponse(term))
}

// Remove handles DELETE /contracts/{id}/terms/{key}.
func (h *TermHandler) Remove(w http.ResponseWriter, r *http.Request) {
	contractID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	err := h.svc.Remove(r.Context(), terms.RemoveInput{
		ContractID: contractID,
		Key:        r.PathValue("key"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toTermResponse(t domain.Term) termResponse {
	resp := termResponse{
		Key:             t.Key,
		Name:            t.Name,
		ValueType:       t.ValueType.String(),
		ValueRaw:        t.ValueRaw,
		ValueNormalized: t.ValueNormalized,
		Status:          t.Status.String(),
		Confidence:      t.Confidence,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
	if t.ValueDate != nil {
		resp.ValueDate = t.ValueDate.Format("2006-01-02")
	}
	return resp
}
