// Package rest wires the HTTP API: JSON handlers over the service layer plus
// the middleware stack (request id, logging, recovery, CORS, rate limiting,
// bearer auth).
package rest

import (
	"log/slog"
	"net/http"

	"github.com/pactwatch/pactwatch-backend/internal/config"
	"github.com/pactwatch/pactwatch-backend/internal/transport/middleware"
)

// RouterDeps holds everything the router needs.
type RouterDeps struct {
	Auth      *AuthHandler
	Contracts *ContractHandler
	Terms     *TermHandler
	Events    *EventHandler
	Reminders *ReminderHandler
	Views     *ViewHandler
	Catalog   *CatalogHandler
	Admin     *AdminHandler
	Health    *HealthHandler

	TokenValidator middleware.TokenValidator
	RateLimiter    *middleware.RateLimiter
	Log            *slog.Logger
	CORS           config.CORSConfig
	Limits         config.LimitsConfig
}

// NewRouter assembles the HTTP handler tree. Auth endpoints carry a stricter
// per-IP rate limit than the rest of the API.
func NewRouter(deps RouterDeps) http.Handler {
	mux := http.NewServeMux()

	// Probes sit outside the API prefix and skip auth.
	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	authLimit := deps.RateLimiter.Limit(deps.Limits.AuthPerMinute)
	mux.Handle("POST /api/v1/auth/register", authLimit(http.HandlerFunc(deps.Auth.Register)))
	mux.Handle("POST /api/v1/auth/login", authLimit(http.HandlerFunc(deps.Auth.Login)))
	mux.Handle("POST /api/v1/auth/refresh", authLimit(http.HandlerFunc(deps.Auth.Refresh)))
	mux.HandleFunc("POST /api/v1/auth/logout", deps.Auth.Logout)

	mux.HandleFunc("POST /api/v1/contracts", deps.Contracts.Create)
	mux.HandleFunc("GET /api/v1/contracts", deps.Contracts.List)
	mux.HandleFunc("GET /api/v1/contracts/{id}", deps.Contracts.Get)
	mux.HandleFunc("PUT /api/v1/contracts/{id}", deps.Contracts.Update)
	mux.HandleFunc("DELETE /api/v1/contracts/{id}", deps.Contracts.Delete)

	mux.HandleFunc("GET /api/v1/contracts/{id}/terms", deps.Terms.List)
	mux.HandleFunc("GET /api/v1/contracts/{id}/terms/{key}", deps.Terms.Get)
	mux.HandleFunc("PUT /api/v1/contracts/{id}/terms/{key}", deps.Terms.Apply)
	mux.HandleFunc("DELETE /api/v1/contracts/{id}/terms/{key}", deps.Terms.Remove)

	mux.HandleFunc("POST /api/v1/events", deps.Events.Add)
	mux.HandleFunc("GET /api/v1/events", deps.Events.Query)
	mux.HandleFunc("GET /api/v1/events/{id}", deps.Events.Get)
	mux.HandleFunc("PUT /api/v1/events/{id}", deps.Events.Update)
	mux.HandleFunc("DELETE /api/v1/events/{id}", deps.Events.Remove)

	mux.HandleFunc("GET /api/v1/events/{id}/reminder", deps.Reminders.Get)
	mux.HandleFunc("PUT /api/v1/events/{id}/reminder", deps.Reminders.Configure)
	mux.HandleFunc("DELETE /api/v1/events/{id}/reminder", deps.Reminders.Remove)

	mux.HandleFunc("GET /api/v1/views/events", deps.Views.Render)
	mux.HandleFunc("GET /api/v1/terms/catalog", deps.Catalog.List)

	mux.HandleFunc("POST /api/v1/admin/tokens/cleanup", deps.Admin.CleanupTokens)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(deps.Log),
		middleware.Recovery(deps.Log),
		middleware.CORS(deps.CORS),
		deps.RateLimiter.Limit(deps.Limits.APIPerMinute),
		middleware.Auth(deps.TokenValidator),
	)
	return chain(mux)
}
