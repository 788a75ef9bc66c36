package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/tabdeck/tabdeck/internal/httpserver/deps"
	"github.com/tabdeck/tabdeck/internal/httpserver/handlers"
)

func init() { Register(registerConfig) }

func registerConfig(r chi.Router, d deps.Deps) {
	r.Route("/api/config", func(r chi.Router) {
		r.Get("/", handlers.GetConfig(d))
		r.Patch("/", handlers.UpdateConfig(d))
		r.Get("/export", handlers.ExportConfig(d))
		r.Post("/import", handlers.ImportConfig(d))
		r.Post("/reset", handlers.ResetConfig(d))
	})
}
