package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/tabdeck/tabdeck/internal/httpserver/deps"
	"github.com/tabdeck/tabdeck/internal/httpserver/handlers"
)

func init() { Register(registerSettings) }

func registerSettings(r chi.Router, d deps.Deps) {
	r.Route("/api/background", func(r chi.Router) {
		r.Get("/", handlers.GetBackground(d))
		r.Patch("/", handlers.UpdateBackground(d))
	})
	r.Route("/api/settings", func(r chi.Router) {
		r.Get("/", handlers.GetSettings(d))
		r.Patch("/", handlers.UpdateSettings(d))
	})
}
