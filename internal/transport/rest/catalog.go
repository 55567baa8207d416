package rest

import (
	"net/http"

	"github.com/pactwatch/pactwatch-backend/internal/registry"
)

// CatalogHandler serves the term key catalog.
type CatalogHandler struct {
	reg *registry.Registry
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(reg *registry.Registry) *CatalogHandler {
	return &CatalogHandler{reg: reg}
}

type catalogKeyResponse struct {
	Key        string   `json:"key"`
	Name       string   `json:"name"`
	ValueType  string   `json:"valueType"`
	EnumValues []string `json:"enumValues,omitempty"`
	// EventType is set for keys whose date value derives a calendar event.
	EventType string `json:"eventType,omitempty"`
}

// List handles GET /terms/catalog. The catalog is static per deployment, so
// the response carries no user data.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	keys := h.reg.Keys()
	out := make([]catalogKeyResponse, 0, len(keys))

	for _, key := range keys {
		spec, ok := h.reg.Lookup(key)
		if !ok {
			continue
		}
		entry := catalogKeyResponse{
			Key:        spec.Key,
			Name:       spec.Name,
			ValueType:  spec.ValueType.String(),
			EnumValues: spec.EnumValues,
		}
		if tmpl, ok := h.reg.ImpliesEvent(key); ok {
			entry.EventType = tmpl.EventType.String()
		}
		out = append(out, entry)
	}

	writeJSON(w, http.StatusOK, map[string]any{"keys": out})
}
