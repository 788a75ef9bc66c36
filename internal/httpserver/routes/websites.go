package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/tabdeck/tabdeck/internal/httpserver/deps"
	"github.com/tabdeck/tabdeck/internal/httpserver/handlers"
)

func init() { Register(registerWebsites) }

func registerWebsites(r chi.Router, d deps.Deps) {
	r.Route("/api/websites", func(r chi.Router) {
		r.Get("/", handlers.ListWebsites(d))
		r.Post("/", handlers.AddWebsite(d))
		r.Put("/reorder", handlers.ReorderWebsites(d))
		r.Patch("/{id}", handlers.UpdateWebsite(d))
		r.Delete("/{id}", handlers.DeleteWebsite(d))
		r.Post("/{id}/click", handlers.RecordClick(d))
	})
}
