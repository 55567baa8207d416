package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pactwatch/pactwatch-backend/internal/domain"
	"github.com/pactwatch/pactwatch-backend/internal/service/contracts"
)

// contractService defines the minimal interface needed by ContractHandler.
type contractService interface {
	Create(ctx context.Context, input contracts.CreateInput) (domain.Contract, error)
	Get(ctx context.Context, contractID uuid.UUID) (domain.Contract, error)
	List(ctx context.Context, input contracts.ListInput) ([]domain.Contract, error)
	Update(ctx context.Context, input contracts.UpdateInput) (domain.Contract, error)
	Delete(ctx context.Context, contractID uuid.UUID) error
}

// ContractHandler serves contract REST endpoints.
type ContractHandler struct {
	svc contractService
	log *slog.Logger
}

// NewContractHandler creates a ContractHandler.
func NewContractHandler(svc contractService, logger *slog.Logger) *ContractHandler {
	return &ContractHandler{svc: svc, log: logger.With("handler", "contracts")}
}

type contractRequest struct {
	Title         string `json:"title"`
	Vendor        string `json:"vendor"`
	AgreementType string `json:"agreementType"`
}

type contractResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Vendor        string    `json:"vendor,omitempty"`
	AgreementType string    `json:"agreementType,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Create handles POST /contracts.
func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contract, err := h.svc.Create(r.Context(), contracts.CreateInput{
		Title:         req.Title,
		Vendor:        req.Vendor,
		AgreementType: req.AgreementType,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toContractResponse(contract))
}

// Get handles GET /contracts/{id}.
func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	contract, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toContractResponse(contract))
}

// List handles GET /contracts?limit=&offset=.
func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	input := contracts.ListInput{}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "limit must be an integer")
			return
		}
		input.Limit = n
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "offset must be an integer")
			return
		}
		input.Offset = n
	}

	list, err := h.svc.List(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]contractResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toContractResponse(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"contracts": out})
}

// Update handles PUT /contracts/{id}.
func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req contractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	contract, err := h.svc.Update(r.Context(), contracts.UpdateInput{
		ContractID:    id,
		Title:         req.Title,
		Vendor:        req.Vendor,
		AgreementType: req.AgreementType,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toContractResponse(contract))
}

// Delete handles DELETE /contracts/{id}.
func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toContractResponse(c domain.Contract) contractResponse {
	return contractResponse{
		ID:            c.ID.String(),
		Title:         c.Title,
		Vendor:        c.Vendor,
		AgreementType: c.AgreementType,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

// pathUUID parses a UUID path segment, writing a 400 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, name+" must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
