package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/jobpulse/pulse/internal/httpserver/deps"
	"github.com/jobpulse/pulse/internal/httpserver/handlers"
)

func init() { Register(registerJobs) }

func registerJobs(r chi.Router, d deps.Deps) {
	r.Get("/api/jobs", handlers.ListJobs(d))
	r.Get("/api/jobs/{id}", handlers.GetJob(d))
	r.Put("/api/jobs/{id}/saved", handlers.SaveJob(d))
	r.Delete("/api/jobs/{id}/saved", handlers.UnsaveJob(d))
	r.Get("/api/saved", handlers.ListSaved(d))
}
