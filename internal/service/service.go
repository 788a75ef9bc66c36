// Package service is the sole mutation surface over the configuration
// document. Every operation is read-current, compute-next, persist: the
// store validates and sanitizes the full replacement document, and every
// successful persist is announced on the change notifier.
//
// Reads here return raw storage state. Synthetic presentation entries
// (the "frequent" pseudo-category) are injected one layer up, in the
// view package.
package service

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"github.com/tabdeck/tabdeck/internal/domain"
	"github.com/tabdeck/tabdeck/internal/logger"
	"github.com/tabdeck/tabdeck/internal/notify"
	"github.com/tabdeck/tabdeck/internal/store"
)

var (
	// ErrCategoryNotFound is returned when a category ID does not resolve.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrWebsiteNotFound is returned when a website ID does not resolve.
	ErrWebsiteNotFound = errors.New("website not found")

	// ErrProtectedCategory is returned for mutations refused outright:
	// deleting "all", or editing/deleting the synthetic "frequent" entry.
	ErrProtectedCategory = errors.New("category is protected")

	// ErrInvalidURL is returned when a website URL is not plain http(s).
	ErrInvalidURL = errors.New("website url must start with http:// or https://")
)

// Service exposes document reads and all CRUD/reorder operations.
type Service struct {
	store    *store.Store
	notifier *notify.Notifier
	log      logger.Logger
}

func New(st *store.Store, notifier *notify.Notifier, log logger.Logger) *Service {
	return &Service{store: st, notifier: notifier, log: log}
}

// Config returns the current persisted document (sanitized).
func (s *Service) Config(ctx context.Context) domain.AppConfig {
	return s.store.Load(ctx)
}

// UpdateConfig applies a generic patch to the document. Categories and
// websites present in the patch replace the current slices wholesale;
// background and settings merge one level deep (see domain.ConfigPatch).
func (s *Service) UpdateConfig(ctx context.Context, patch domain.ConfigPatch) error {
	next := patch.Apply(s.store.Load(ctx))
	return s.persist(ctx, next)
}

// ─────────────────────────────────────────────────────────────────
// Categories
// ─────────────────────────────────────────────────────────────────

// Categories returns all persisted categories sorted by Order, ascending.
// Ties keep insertion order.
func (s *Service) Categories(ctx context.Context) []domain.Category {
	cfg := s.store.Load(ctx)
	cats := make([]domain.Category, len(cfg.Categories))
	copy(cats, cfg.Categories)
	sort.SliceStable(cats, func(i, j int) bool { return cats[i].Order < cats[j].Order })
	return cats
}

// AddCategory creates a category at the end of the display order and
// returns it.
func (s *Service) AddCategory(ctx context.Context, name, icon, color string) (*domain.Category, error) {
	cfg := s.store.Load(ctx)

	maxOrder := -1
	for _, c := range cfg.Categories {
		if c.Order > maxOrder {
			maxOrder = c.Order
		}
	}

	cat := domain.Category{
		ID:    "cat_" + uuid.NewString(),
		Name:  name,
		Icon:  icon,
		Color: color,
		Order: maxOrder + 1,
	}
	cfg.Categories = append(cfg.Categories, cat)

	if err := s.persist(ctx, cfg); err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdateCategory shallow-merges the patch onto an existing category.
func (s *Service) UpdateCategory(ctx context.Context, id string, patch domain.CategoryPatch) error {
	if id == domain.CategoryFrequent {
		return ErrProtectedCategory
	}

	cfg := s.store.Load(ctx)
	idx := categoryIndex(cfg.Categories, id)
	if idx == -1 {
		return ErrCategoryNotFound
	}

	cfg.Categories[idx] = patch.Apply(cfg.Categories[idx])
	return s.persist(ctx, cfg)
}

// DeleteCategory removes a category and reassigns its websites to "all",
// never leaving a dangling reference. Deleting "all" or "frequent" is
// refused outright.
func (s *Service) DeleteCategory(ctx context.Context, id string) error {
	if id == domain.CategoryAll || id == domain.CategoryFrequent {
		s.log.Warn("refusing to delete protected category", logger.String("id", id))
		return ErrProtectedCategory
	}

	cfg := s.store.Load(ctx)
	idx := categoryIndex(cfg.Categories, id)
	if idx == -1 {
		return ErrCategoryNotFound
	}

	cfg.Categories = append(cfg.Categories[:idx], cfg.Categories[idx+1:]...)
	for i := range cfg.Websites {
		if cfg.Websites[i].CategoryID == id {
			cfg.Websites[i].CategoryID = domain.CategoryAll
		}
	}
	return s.persist(ctx, cfg)
}

// ReorderCategories assigns Order = position for each listed ID.
// Categories absent from ids keep their previous order, so callers
// should pass the full ID set for a well-defined result.
func (s *Service) ReorderCategories(ctx context.Context, ids []string) error {
	cfg := s.store.Load(ctx)
	for pos, id := range ids {
		if idx := categoryIndex(cfg.Categories, id); idx != -1 {
			cfg.Categories[idx].Order = pos
		}
	}
	return s.persist(ctx, cfg)
}

// ─────────────────────────────────────────────────────────────────
// Websites
// ─────────────────────────────────────────────────────────────────

// Websites returns websites sorted by Order, ascending. An empty or
// "all" categoryID returns everything; any other value filters by
// category first. Unknown IDs yield an empty list.
func (s *Service) Websites(ctx context.Context, categoryID string) []domain.Website {
	cfg := s.store.Load(ctx)

	sites := cfg.Websites
	if categoryID != "" && categoryID != domain.CategoryAll {
		filtered := make([]domain.Website, 0, len(sites))
		for _, w := range sites {
			if w.CategoryID == categoryID {
				filtered = append(filtered, w)
			}
		}
		sites = filtered
	} else {
		// Non-nil copy so an empty list renders as [] on the API.
		copied := make([]domain.Website, len(sites))
		copy(copied, sites)
		sites = copied
	}

	sort.SliceStable(sites, func(i, j int) bool { return sites[i].Order < sites[j].Order })
	return sites
}

// AddWebsite creates a shortcut. ID, Order and ClickCount on the input
// are ignored: a fresh ID is assigned, the order is scoped to the target
// category (appended at its end), and the click count starts at zero.
func (s *Service) AddWebsite(ctx context.Context, site domain.Website) (*domain.Website, error) {
	if !domain.ValidWebsiteURL(site.URL) {
		return nil, ErrInvalidURL
	}

	cfg := s.store.Load(ctx)

	maxOrder := -1
	for _, w := range cfg.Websites {
		if w.CategoryID == site.CategoryID && w.Order > maxOrder {
			maxOrder = w.Order
		}
	}

	site.ID = "site_" + uuid.NewString()
	site.Order = maxOrder + 1
	site.ClickCount = 0
	cfg.Websites = append(cfg.Websites, site)

	if err := s.persist(ctx, cfg); err != nil {
		return nil, err
	}
	return &site, nil
}

// UpdateWebsite shallow-merges the patch onto an existing website.
func (s *Service) UpdateWebsite(ctx context.Context, id string, patch domain.WebsitePatch) error {
	if patch.URL != nil && !domain.ValidWebsiteURL(*patch.URL) {
		return ErrInvalidURL
	}

	cfg := s.store.Load(ctx)
	idx := websiteIndex(cfg.Websites, id)
	if idx == -1 {
		return ErrWebsiteNotFound
	}

	cfg.Websites[idx] = patch.Apply(cfg.Websites[idx])
	return s.persist(ctx, cfg)
}

// DeleteWebsite removes a shortcut.
func (s *Service) DeleteWebsite(ctx context.Context, id string) error {
	cfg := s.store.Load(ctx)
	idx := websiteIndex(cfg.Websites, id)
	if idx == -1 {
		return ErrWebsiteNotFound
	}

	cfg.Websites = append(cfg.Websites[:idx], cfg.Websites[idx+1:]...)
	return s.persist(ctx, cfg)
}

// ReorderWebsites assigns Order = position for each listed ID across the
// whole flattened website set, matching drag-and-drop over a flat list.
func (s *Service) ReorderWebsites(ctx context.Context, ids []string) error {
	cfg := s.store.Load(ctx)
	for pos, id := range ids {
		if idx := websiteIndex(cfg.Websites, id); idx != -1 {
			cfg.Websites[idx].Order = pos
		}
	}
	return s.persist(ctx, cfg)
}

// RecordClick increments a website's click count. This is the one
// mutation driven by normal browsing rather than explicit editing; the
// caller fires it before navigating away.
func (s *Service) RecordClick(ctx context.Context, id string) error {
	cfg := s.store.Load(ctx)
	idx := websiteIndex(cfg.Websites, id)
	if idx == -1 {
		return ErrWebsiteNotFound
	}

	cfg.Websites[idx].ClickCount++
	return s.persist(ctx, cfg)
}

// ─────────────────────────────────────────────────────────────────
// Background and settings
// ─────────────────────────────────────────────────────────────────

// Background returns the current backdrop configuration.
func (s *Service) Background(ctx context.Context) domain.BackgroundConfig {
	return s.store.Load(ctx).Background
}

// UpdateBackground merges the patch one level deep onto the backdrop.
func (s *Service) UpdateBackground(ctx context.Context, patch domain.BackgroundPatch) error {
	cfg := s.store.Load(ctx)
	cfg.Background = patch.Apply(cfg.Background)
	return s.persist(ctx, cfg)
}

// Settings returns the current user preferences.
func (s *Service) Settings(ctx context.Context) domain.Settings {
	return s.store.Load(ctx).Settings
}

// UpdateSettings merges the patch one level deep onto the settings.
func (s *Service) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) error {
	cfg := s.store.Load(ctx)
	cfg.Settings = patch.Apply(cfg.Settings)
	return s.persist(ctx, cfg)
}

// SetActiveCategory is sugar for updating settings.activeCategory. The
// reference is not checked: an invalid one simply yields an empty
// filtered website list.
func (s *Service) SetActiveCategory(ctx context.Context, id string) error {
	return s.UpdateSettings(ctx, domain.SettingsPatch{ActiveCategory: &id})
}

// ─────────────────────────────────────────────────────────────────
// Import/export
// ─────────────────────────────────────────────────────────────────

// ExportConfig returns the persisted, sanitized document pretty-printed.
func (s *Service) ExportConfig(ctx context.Context) string {
	return s.store.Export(ctx)
}

// ImportConfig restores a full document from a transportable JSON string.
// Import bypasses the normal mutation path, so a successful restore is
// announced on the notifier to refresh every live observer.
func (s *Service) ImportConfig(ctx context.Context, jsonText string) error {
	if err := s.store.Import(ctx, jsonText); err != nil {
		return err
	}
	s.notifier.Emit()
	return nil
}

// ResetConfig restores the bundled default document.
func (s *Service) ResetConfig(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return err
	}
	s.notifier.Emit()
	return nil
}

// persist saves the computed replacement document and announces the
// change. On error no state changed; observers keep their current view.
func (s *Service) persist(ctx context.Context, cfg domain.AppConfig) error {
	if err := s.store.Save(ctx, cfg); err != nil {
		return err
	}
	s.notifier.Emit()
	return nil
}

func categoryIndex(cats []domain.Category, id string) int {
	for i, c := range cats {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func websiteIndex(sites []domain.Website, id string) int {
	for i, w := range sites {
		if w.ID == id {
			return i
		}
	}
	return -1
}
