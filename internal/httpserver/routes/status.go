package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/jobpulse/pulse/internal/httpserver/deps"
	"github.com/jobpulse/pulse/internal/httpserver/handlers"
)

func init() { Register(registerStatus) }

func registerStatus(r chi.Router, d deps.Deps) {
	r.Put("/api/jobs/{id}/status", handlers.UpdateStatus(d))
	r.Get("/api/status/history", handlers.StatusHistory(d))
}
