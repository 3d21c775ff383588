package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// conditionalHTTPLogger only logs HTTP requests when HTTP logging is enabled
func (h *Handlers) conditionalHTTPLogger(next http.Handler) http.Handler {
	logger := middleware.Logger(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.Log != nil && h.Log.IsHTTPLoggingEnabled() {
			logger.ServeHTTP(w, r)
		} else {
			next.ServeHTTP(w, r)
		}
	})
}

// Router returns a configured chi router with all routes
func (h *Handlers) Router() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.conditionalHTTPLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler)

	// Operational endpoints
	r.Get("/healthz", h.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	// WebSocket
	r.Get("/ws", h.Hub.ServeWs)

	// Auth (public)
	r.Post("/api/auth/login", h.handleLogin)
	r.Post("/api/auth/signup", h.handleSignup)
	r.Post("/api/auth/logout", h.handleLogout)

	// Catalog (public)
	r.Get("/api/hackathons", h.handleListHackathons)
	r.Get("/api/hackathons/{id}", h.handleGetHackathon)
	r.Get("/api/hackathons/{id}/qr", h.handleCheckInQR)
	r.Get("/api/hackathons/{id}/teams", h.handleHackathonTeams)

	// User API (session required)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireUser)

		r.Get("/api/users/me", h.handleMe)
		r.Put("/api/users/me", h.handleUpdateProfile)
		r.Get("/api/users/me/hackathons", h.handleMyHackathons)
		r.Get("/api/users/me/teams", h.handleMyTeams)
		r.Get("/api/users/me/submissions", h.handleMySubmissions)

		// Registration
		r.Post("/api/hackathons/{id}/register", h.handleRegister)
		r.Delete("/api/hackathons/{id}/register", h.handleUnregister)

		// Timer
		r.Post("/api/hackathons/{id}/timer", h.handleStartTimer)
		r.Get("/api/hackathons/{id}/timer", h.handleCountdown)

		// Teams
		r.Post("/api/teams", h.handleCreateTeam)
		r.Get("/api/teams/{id}", h.handleGetTeam)
		r.Put("/api/teams/{id}", h.handleRenameTeam)
		r.Delete("/api/teams/{id}", h.handleDeleteTeam)
		r.Post("/api/teams/{id}/members", h.handleAddTeamMember)
		r.Delete("/api/teams/{id}/members/{userID}", h.handleRemoveTeamMember)

		// Submissions
		r.Post("/api/submissions", h.handleSubmit)
		r.Get("/api/submissions/{id}", h.handleGetSubmission)
		r.Put("/api/submissions/{id}/tasks/{index}", h.handleUpdateTask)
	})

	// Admin API (admin role required)
	r.Group(func(r chi.Router) {
		r.Use(h.Auth.RequireAdmin)

		r.Post("/api/admin/hackathons", h.handleCreateHackathon)
		r.Put("/api/admin/hackathons/{id}", h.handleUpdateHackathon)
		r.Delete("/api/admin/hackathons/{id}", h.handleDeleteHackathon)

		r.Get("/api/admin/submissions", h.handleAdminSubmissions)
		r.Get("/api/admin/hackathons/{id}/submissions", h.handleHackathonSubmissions)
		r.Put("/api/admin/submissions/{id}/status", h.handleReviewSubmission)
		r.Delete("/api/admin/submissions/{id}", h.handleDeleteSubmission)

		r.Get("/api/admin/users", h.handleListUsers)
		r.Put("/api/admin/users/{id}", h.handleAdminUpdateUser)
		r.Get("/api/admin/users/active", h.handleActiveUsers)
		r.Get("/api/admin/stats", h.handleStats)
	})

	return r
}

// handleHealthz reports process liveness
func (h *Handlers) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondOK(w, map[string]string{"status": "ok"})
}
