package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tabdeck/tabdeck/internal/domain"
	"github.com/tabdeck/tabdeck/internal/httpserver/deps"
)

// ListWebsites returns shortcuts for ?category=<id> (everything when
// omitted or "all"). The "frequent" pseudo-category is served by the
// presentation reader.
func ListWebsites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID := r.URL.Query().Get("category")
		writeJSON(w, http.StatusOK, d.Reader.Websites(r.Context(), categoryID))
	}
}

type addWebsiteRequest struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	CategoryID string `json:"categoryId"`
	Icon       string `json:"icon,omitempty"`
	IconType   string `json:"iconType,omitempty"`
	Color      string `json:"color,omitempty"`
}

func AddWebsite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addWebsiteRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if req.Name == "" {
			writeError(w, http.StatusBadRequest, "website name is required")
			return
		}
		if req.CategoryID == "" {
			req.CategoryID = domain.CategoryAll
		}

		site, err := d.Service.AddWebsite(r.Context(), domain.Website{
			Name:       req.Name,
			URL:        req.URL,
			CategoryID: req.CategoryID,
			Icon:       req.Icon,
			IconType:   req.IconType,
			Color:      req.Color,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, site)
	}
}

func UpdateWebsite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.WebsitePatch
		if err := decodeJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if patch.Name != nil && *patch.Name == "" {
			writeError(w, http.StatusBadRequest, "website name must not be empty")
			return
		}

		id := chi.URLParam(r, "id")
		if err := d.Service.UpdateWebsite(r.Context(), id, patch); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteWebsite(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Service.DeleteWebsite(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ReorderWebsites(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req reorderRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if err := d.Service.ReorderWebsites(r.Context(), req.IDs); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RecordClick bumps a shortcut's click count. The new-tab page fires
// this right before navigating away.
func RecordClick(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := d.Service.RecordClick(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
