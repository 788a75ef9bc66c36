package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/tabdeck/tabdeck/internal/httpserver/deps"
	"github.com/tabdeck/tabdeck/internal/httpserver/handlers"
)

func init() { Register(registerCategories) }

func registerCategories(r chi.Router, d deps.Deps) {
	r.Route("/api/categories", func(r chi.Router) {
		r.Get("/", handlers.ListCategories(d))
		r.Post("/", handlers.AddCategory(d))
		r.Put("/reorder", handlers.ReorderCategories(d))
		r.Patch("/{id}", handlers.UpdateCategory(d))
		r.Delete("/{id}", handlers.DeleteCategory(d))
	})
}
