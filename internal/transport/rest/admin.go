package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/pactwatch/pactwatch-backend/internal/transport/middleware"
)

type tokenJanitor interface {
	CleanupExpiredTokens(ctx context.Context) (int, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	auth tokenJanitor
	log  *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(auth tokenJanitor, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		auth: auth,
		log:  logger.With("handler", "admin"),
	}
}

// CleanupTokens deletes expired refresh tokens.
// POST /admin/tokens/cleanup
func (h *AdminHandler) CleanupTokens(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	deleted, err := h.auth.CleanupExpiredTokens(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "cleanup tokens", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"deleted": deleted})
}
