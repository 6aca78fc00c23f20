package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/jobpulse/pulse/internal/httpserver/deps"
	"github.com/jobpulse/pulse/internal/httpserver/handlers"
)

func init() { Register(registerPreferences) }

func registerPreferences(r chi.Router, d deps.Deps) {
	r.Get("/api/preferences", handlers.GetPreferences(d))
	r.Put("/api/preferences", handlers.UpdatePreferences(d))
}
