package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/tabdeck/tabdeck/internal/domain"
	"github.com/tabdeck/tabdeck/internal/httpserver/deps"
	"github.com/tabdeck/tabdeck/internal/logger"
	"github.com/tabdeck/tabdeck/internal/store"
	"github.com/tabdeck/tabdeck/internal/utils"
)

// GetConfig returns the full persisted document.
func GetConfig(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Service.Config(r.Context()))
	}
}

// UpdateConfig applies a generic document patch.
func UpdateConfig(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch domain.ConfigPatch
		if err := decodeJSON(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if err := d.Service.UpdateConfig(r.Context(), patch); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, d.Service.Config(r.Context()))
	}
}

// ExportConfig returns the document as a downloadable pretty JSON string.
func ExportConfig(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="`+store.StorageKey+`.json"`)
		_, _ = io.WriteString(w, d.Service.ExportConfig(r.Context()))
	}
}

type importResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// ImportConfig restores a full document from the request body. The body
// is the raw JSON text a previous export produced; the restore is
// all-or-nothing.
func ImportConfig(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer utils.Close(r.Body)

		text, err := io.ReadAll(r.Body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, importResponse{Success: false, Error: "read body: " + err.Error()})
			return
		}

		if err := d.Service.ImportConfig(r.Context(), string(text)); err != nil {
			d.Logger.Warn("config import rejected", logger.Error(err))
			status := http.StatusInternalServerError
			// Parse and validation failures are user-correctable.
			if errors.Is(err, store.ErrParseConfig) || errors.Is(err, store.ErrInvalidConfig) {
				status = http.StatusBadRequest
			}
			writeJSON(w, status, importResponse{Success: false, Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, importResponse{Success: true})
	}
}

// ResetConfig restores the bundled defaults.
func ResetConfig(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Service.ResetConfig(r.Context()); err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, d.Service.Config(r.Context()))
	}
}
