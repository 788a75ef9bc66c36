// Package validate checks structural validity of candidate configuration
// documents and normalizes valid ones into canonical form.
//
// Validation operates on generic decoded JSON so that loaded, imported or
// hand-edited documents all go through the same checks before they are
// trusted. Every violation is accumulated rather than failing fast, so a
// caller always sees the full error list.
package validate

import (
	"fmt"

	"github.com/tabdeck/tabdeck/internal/domain"
)

// Result is the outcome of a structural validation pass.
type Result struct {
	Valid  bool
	Errors []string
}

var backgroundTypes = map[string]bool{
	domain.BackgroundGradient:  true,
	domain.BackgroundLocalPath: true,
	domain.BackgroundFile:      true,
	domain.BackgroundVideo:     true,
}

// Config validates a candidate document decoded from JSON. It never
// panics; errors are returned, not raised.
func Config(candidate any) Result {
	var errs []string

	cfg, ok := candidate.(map[string]any)
	if !ok || cfg == nil {
		return Result{Valid: false, Errors: []string{"config must be an object"}}
	}

	if s, ok := cfg["version"].(string); !ok || s == "" {
		errs = append(errs, "missing valid version field")
	}

	errs = append(errs, checkCategories(cfg["categories"])...)
	errs = append(errs, checkWebsites(cfg["websites"])...)
	errs = append(errs, checkBackground(cfg["background"])...)
	errs = append(errs, checkSettings(cfg["settings"])...)

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func checkCategories(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{"categories must be an array"}
	}

	var errs []string
	for i, item := range items {
		cat, ok := item.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("category %d: must be an object", i))
			continue
		}
		if s, ok := cat["id"].(string); !ok || s == "" {
			errs = append(errs, fmt.Sprintf("category %d: missing valid id", i))
		}
		if s, ok := cat["name"].(string); !ok || s == "" {
			errs = append(errs, fmt.Sprintf("category %d: missing valid name", i))
		}
		if !isNumber(cat["order"]) {
			errs = append(errs, fmt.Sprintf("category %d: order must be a number", i))
		}
	}
	return errs
}

func checkWebsites(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{"websites must be an array"}
	}

	var errs []string
	for i, item := range items {
		site, ok := item.(map[string]any)
		if !ok {
			errs = append(errs, fmt.Sprintf("website %d: must be an object", i))
			continue
		}
		if s, ok := site["id"].(string); !ok || s == "" {
			errs = append(errs, fmt.Sprintf("website %d: missing valid id", i))
		}
		if s, ok := site["name"].(string); !ok || s == "" {
			errs = append(errs, fmt.Sprintf("website %d: missing valid name", i))
		}
		if s, ok := site["url"].(string); !ok || s == "" {
			errs = append(errs, fmt.Sprintf("website %d: missing valid url", i))
		}
		if s, ok := site["categoryId"].(string); !ok || s == "" {
			errs = append(errs, fmt.Sprintf("website %d: missing valid categoryId", i))
		}
		if !isNumber(site["order"]) {
			errs = append(errs, fmt.Sprintf("website %d: order must be a number", i))
		}
	}
	return errs
}

func checkBackground(v any) []string {
	bg, ok := v.(map[string]any)
	if !ok {
		return []string{"missing valid background config"}
	}

	var errs []string
	if t, ok := bg["type"].(string); !ok || !backgroundTypes[t] {
		errs = append(errs, "background.type must be one of gradient, local-path, file, video")
	}
	// Effect ranges are a sanitize-time concern; only presence is checked here.
	if _, ok := bg["effects"].(map[string]any); !ok {
		errs = append(errs, "missing background.effects config")
	}
	return errs
}

func checkSettings(v any) []string {
	settings, ok := v.(map[string]any)
	if !ok {
		return []string{"missing valid settings config"}
	}

	var errs []string
	if s, ok := settings["activeCategory"].(string); !ok || s == "" {
		errs = append(errs, "settings.activeCategory must be a non-empty string")
	}
	return errs
}

// isNumber accepts any JSON number. encoding/json decodes numbers to
// float64 by default, but documents re-encoded from typed structs may
// surface int values when decoded through other paths.
func isNumber(v any) bool {
	switch v.(type) {
	case float64, int, int64:
		return true
	default:
		return false
	}
}
