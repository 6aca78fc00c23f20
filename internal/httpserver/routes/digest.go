package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/jobpulse/pulse/internal/httpserver/deps"
	"github.com/jobpulse/pulse/internal/httpserver/handlers"
)

func init() { Register(registerDigest) }

func registerDigest(r chi.Router, d deps.Deps) {
	r.Post("/api/digest", handlers.GenerateDigest(d))
	r.Get("/api/digest", handlers.GetDigest(d))
	r.Get("/api/digest/text", handlers.DigestText(d))
}
