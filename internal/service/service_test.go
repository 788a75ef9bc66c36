package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/tabdeck/tabdeck/internal/domain"
	"github.com/tabdeck/tabdeck/internal/logger"
	"github.com/tabdeck/tabdeck/internal/notify"
	"github.com/tabdeck/tabdeck/internal/store"
	"github.com/tabdeck/tabdeck/internal/store/file"
)

func newTestService(t *testing.T) (*Service, *notify.Notifier) {
	t.Helper()
	kv := file.New(filepath.Join(t.TempDir(), "config.json"))
	notifier := notify.New(logger.Nop())
	st := store.New(kv, logger.Nop())
	return New(st, notifier, logger.Nop()), notifier
}

func str(s string) *string { return &s }

func TestAddCategoryAppendsToOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	work, err := svc.AddCategory(ctx, "Work", "💼", "#ff0000")
	if err != nil {
		t.Fatalf("AddCategory() error = %v", err)
	}
	play, err := svc.AddCategory(ctx, "Play", "🎮", "")
	if err != nil {
		t.Fatalf("AddCategory() error = %v", err)
	}

	if work.ID == "" || work.ID == play.ID {
		t.Errorf("category IDs must be unique and non-empty, got %q and %q", work.ID, play.ID)
	}
	// "all" holds order 0; new categories append after it.
	if work.Order != 1 || play.Order != 2 {
		t.Errorf("orders = (%d, %d), want (1, 2)", work.Order, play.Order)
	}

	cats := svc.Categories(ctx)
	if len(cats) != 3 {
		t.Fatalf("Categories() returned %d entries, want 3", len(cats))
	}
	if cats[0].ID != domain.CategoryAll || cats[1].ID != work.ID || cats[2].ID != play.ID {
		t.Errorf("Categories() order = %v", []string{cats[0].ID, cats[1].ID, cats[2].ID})
	}
}

func TestUpdateCategory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cat, err := svc.AddCategory(ctx, "Work", "💼", "")
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.UpdateCategory(ctx, cat.ID, domain.CategoryPatch{Name: str("Office")}); err != nil {
		t.Fatalf("UpdateCategory() error = %v", err)
	}

	cats := svc.Categories(ctx)
	if cats[1].Name != "Office" || cats[1].Icon != "💼" {
		t.Errorf("category after patch = %+v, want name changed and icon kept", cats[1])
	}

	if err := svc.UpdateCategory(ctx, "cat_missing", domain.CategoryPatch{}); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("UpdateCategory(missing) error = %v, want ErrCategoryNotFound", err)
	}
	if err := svc.UpdateCategory(ctx, domain.CategoryFrequent, domain.CategoryPatch{}); !errors.Is(err, ErrProtectedCategory) {
		t.Errorf("UpdateCategory(frequent) error = %v, want ErrProtectedCategory", err)
	}
}

func TestDeleteCategoryReassignsWebsites(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cat, err := svc.AddCategory(ctx, "Work", "", "")
	if err != nil {
		t.Fatal(err)
	}
	site, err := svc.AddWebsite(ctx, domain.Website{Name: "Mail", URL: "https://mail.test", CategoryID: cat.ID})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteCategory(ctx, cat.ID); err != nil {
		t.Fatalf("DeleteCategory() error = %v", err)
	}

	for _, c := range svc.Categories(ctx) {
		if c.ID == cat.ID {
			t.Error("deleted category still listed")
		}
	}

	sites := svc.Websites(ctx, "")
	if len(sites) != 1 {
		t.Fatalf("websites after category delete = %d, want 1 survivor", len(sites))
	}
	if sites[0].ID != site.ID || sites[0].CategoryID != domain.CategoryAll {
		t.Errorf("orphaned website = %+v, want reassigned to %q", sites[0], domain.CategoryAll)
	}
}

func TestDeleteCategoryProtections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, id := range []string{domain.CategoryAll, domain.CategoryFrequent} {
		if err := svc.DeleteCategory(ctx, id); !errors.Is(err, ErrProtectedCategory) {
			t.Errorf("DeleteCategory(%q) error = %v, want ErrProtectedCategory", id, err)
		}
	}
	if err := svc.DeleteCategory(ctx, "cat_missing"); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("DeleteCategory(missing) error = %v, want ErrCategoryNotFound", err)
	}
}

func TestReorderCategories(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, _ := svc.AddCategory(ctx, "A", "", "")
	b, _ := svc.AddCategory(ctx, "B", "", "")

	if err := svc.ReorderCategories(ctx, []string{b.ID, a.ID, domain.CategoryAll}); err != nil {
		t.Fatalf("ReorderCategories() error = %v", err)
	}

	cats := svc.Categories(ctx)
	got := []string{cats[0].ID, cats[1].ID, cats[2].ID}
	want := []string{b.ID, a.ID, domain.CategoryAll}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Categories() after reorder = %v, want %v", got, want)
		}
	}

	// Unknown IDs are skipped; unmentioned categories keep their order.
	if err := svc.ReorderCategories(ctx, []string{"cat_ghost", a.ID}); err != nil {
		t.Fatalf("ReorderCategories() with unknown ID error = %v", err)
	}
	cats = svc.Categories(ctx)
	if cats[0].ID != b.ID || cats[1].ID != a.ID || cats[2].ID != domain.CategoryAll {
		t.Errorf("Categories() = %v, want b, a, all", []string{cats[0].ID, cats[1].ID, cats[2].ID})
	}
}

func TestAddWebsiteOrdersPerCategory(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cat, _ := svc.AddCategory(ctx, "Work", "", "")

	first, err := svc.AddWebsite(ctx, domain.Website{Name: "One", URL: "https://one.test", CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("AddWebsite() error = %v", err)
	}
	second, err := svc.AddWebsite(ctx, domain.Website{Name: "Two", URL: "https://two.test", CategoryID: cat.ID})
	if err != nil {
		t.Fatalf("AddWebsite() error = %v", err)
	}
	other, err := svc.AddWebsite(ctx, domain.Website{Name: "Elsewhere", URL: "https://other.test", CategoryID: domain.CategoryAll})
	if err != nil {
		t.Fatalf("AddWebsite() error = %v", err)
	}

	// Order is scoped per category: a separate category starts back at 0.
	if first.Order != 0 || second.Order != 1 || other.Order != 0 {
		t.Errorf("orders = (%d, %d, %d), want (0, 1, 0)", first.Order, second.Order, other.Order)
	}
	if first.ClickCount != 0 {
		t.Errorf("new website click count = %d, want 0", first.ClickCount)
	}
}

func TestAddWebsiteRejectsBadURL(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddWebsite(ctx, domain.Website{Name: "Bad", URL: "ftp://x", CategoryID: domain.CategoryAll})
	if !errors.Is(err, ErrInvalidURL) {
		t.Errorf("AddWebsite(ftp) error = %v, want ErrInvalidURL", err)
	}
	if sites := svc.Websites(ctx, ""); len(sites) != 0 {
		t.Errorf("rejected add persisted %d websites", len(sites))
	}
}

func TestUpdateWebsite(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	site, _ := svc.AddWebsite(ctx, domain.Website{Name: "One", URL: "https://one.test", CategoryID: domain.CategoryAll})

	if err := svc.UpdateWebsite(ctx, site.ID, domain.WebsitePatch{URL: str("not-a-url")}); !errors.Is(err, ErrInvalidURL) {
		t.Errorf("UpdateWebsite(bad url) error = %v, want ErrInvalidURL", err)
	}
	if err := svc.UpdateWebsite(ctx, "site_missing", domain.WebsitePatch{}); !errors.Is(err, ErrWebsiteNotFound) {
		t.Errorf("UpdateWebsite(missing) error = %v, want ErrWebsiteNotFound", err)
	}

	if err := svc.UpdateWebsite(ctx, site.ID, domain.WebsitePatch{Name: str("Renamed")}); err != nil {
		t.Fatalf("UpdateWebsite() error = %v", err)
	}
	got := svc.Websites(ctx, "")
	if got[0].Name != "Renamed" || got[0].URL != "https://one.test" {
		t.Errorf("website after patch = %+v", got[0])
	}
}

func TestDeleteWebsite(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	site, _ := svc.AddWebsite(ctx, domain.Website{Name: "One", URL: "https://one.test", CategoryID: domain.CategoryAll})

	if err := svc.DeleteWebsite(ctx, site.ID); err != nil {
		t.Fatalf("DeleteWebsite() error = %v", err)
	}
	if sites := svc.Websites(ctx, ""); len(sites) != 0 {
		t.Errorf("websites after delete = %d, want 0", len(sites))
	}
	if err := svc.DeleteWebsite(ctx, site.ID); !errors.Is(err, ErrWebsiteNotFound) {
		t.Errorf("second DeleteWebsite() error = %v, want ErrWebsiteNotFound", err)
	}
}

func TestReorderWebsites(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, _ := svc.AddWebsite(ctx, domain.Website{Name: "A", URL: "https://a.test", CategoryID: domain.CategoryAll})
	b, _ := svc.AddWebsite(ctx, domain.Website{Name: "B", URL: "https://b.test", CategoryID: domain.CategoryAll})
	c, _ := svc.AddWebsite(ctx, domain.Website{Name: "C", URL: "https://c.test", CategoryID: domain.CategoryAll})

	if err := svc.ReorderWebsites(ctx, []string{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("ReorderWebsites() error = %v", err)
	}

	sites := svc.Websites(ctx, "")
	got := []string{sites[0].ID, sites[1].ID, sites[2].ID}
	want := []string{c.ID, a.ID, b.ID}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Websites() after reorder = %v, want %v", got, want)
		}
	}
}

func TestWebsitesFilter(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cat, _ := svc.AddCategory(ctx, "Work", "", "")
	svc.AddWebsite(ctx, domain.Website{Name: "One", URL: "https://one.test", CategoryID: cat.ID})
	svc.AddWebsite(ctx, domain.Website{Name: "Two", URL: "https://two.test", CategoryID: domain.CategoryAll})

	tests := []struct {
		name       string
		categoryID string
		want       int
	}{
		{"empty means all", "", 2},
		{"all means all", domain.CategoryAll, 2},
		{"specific category", cat.ID, 1},
		{"unknown category", "cat_ghost", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := svc.Websites(ctx, tt.categoryID); len(got) != tt.want {
				t.Errorf("Websites(%q) = %d entries, want %d", tt.categoryID, len(got), tt.want)
			}
		})
	}
}

func TestWebsitesEmptyListIsNotNil(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// Both read paths must yield [] rather than null on the wire.
	if got := svc.Websites(ctx, ""); got == nil {
		t.Error(`Websites("") = nil, want empty slice`)
	}
	if got := svc.Websites(ctx, "cat_ghost"); got == nil {
		t.Error("Websites(unknown) = nil, want empty slice")
	}
}

func TestRecordClick(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	site, _ := svc.AddWebsite(ctx, domain.Website{Name: "One", URL: "https://one.test", CategoryID: domain.CategoryAll})

	for i := 0; i < 3; i++ {
		if err := svc.RecordClick(ctx, site.ID); err != nil {
			t.Fatalf("RecordClick() error = %v", err)
		}
	}

	if got := svc.Websites(ctx, "")[0].ClickCount; got != 3 {
		t.Errorf("click count = %d, want 3", got)
	}

	if err := svc.RecordClick(ctx, "site_missing"); !errors.Is(err, ErrWebsiteNotFound) {
		t.Errorf("RecordClick(missing) error = %v, want ErrWebsiteNotFound", err)
	}
}

func TestUpdateBackgroundMerges(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	blur := domain.BackgroundEffects{Blur: 10, Brightness: 120, Opacity: 80}
	if err := svc.UpdateBackground(ctx, domain.BackgroundPatch{Effects: &blur}); err != nil {
		t.Fatalf("UpdateBackground() error = %v", err)
	}

	bg := svc.Background(ctx)
	if bg.Effects != blur {
		t.Errorf("effects = %+v, want %+v", bg.Effects, blur)
	}
	if bg.Type != domain.BackgroundGradient || bg.Gradient == nil {
		t.Errorf("unrelated background fields changed: %+v", bg)
	}
}

func TestUpdateSettingsMerges(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.UpdateSettings(ctx, domain.SettingsPatch{Theme: str("dark")}); err != nil {
		t.Fatalf("UpdateSettings() error = %v", err)
	}

	got := svc.Settings(ctx)
	if got.Theme != "dark" {
		t.Errorf("theme = %q, want dark", got.Theme)
	}
	if got.ActiveCategory != domain.CategoryAll || got.Language != "en-US" {
		t.Errorf("unrelated settings changed: %+v", got)
	}

	if err := svc.SetActiveCategory(ctx, "cat_x"); err != nil {
		t.Fatalf("SetActiveCategory() error = %v", err)
	}
	if got := svc.Settings(ctx); got.ActiveCategory != "cat_x" {
		t.Errorf("active category = %q, want cat_x", got.ActiveCategory)
	}
}

func TestUpdateConfigCollectionAsymmetry(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	svc.AddWebsite(ctx, domain.Website{Name: "One", URL: "https://one.test", CategoryID: domain.CategoryAll})
	svc.UpdateSettings(ctx, domain.SettingsPatch{Theme: str("dark")})

	err := svc.UpdateConfig(ctx, domain.ConfigPatch{
		Websites: []domain.Website{
			{ID: "site_new", Name: "New", URL: "https://new.test", CategoryID: domain.CategoryAll, Order: 0},
		},
		Settings: &domain.SettingsPatch{Language: str("de-DE")},
	})
	if err != nil {
		t.Fatalf("UpdateConfig() error = %v", err)
	}

	cfg := svc.Config(ctx)
	// Websites replaced wholesale, settings merged field by field.
	if len(cfg.Websites) != 1 || cfg.Websites[0].ID != "site_new" {
		t.Errorf("websites = %+v, want wholesale replacement", cfg.Websites)
	}
	if cfg.Settings.Language != "de-DE" || cfg.Settings.Theme != "dark" {
		t.Errorf("settings = %+v, want merged", cfg.Settings)
	}
}

func TestMutationsEmitChange(t *testing.T) {
	svc, notifier := newTestService(t)
	ctx := context.Background()

	emits := 0
	notifier.Subscribe(func() { emits++ })

	cat, _ := svc.AddCategory(ctx, "Work", "", "")
	site, _ := svc.AddWebsite(ctx, domain.Website{Name: "One", URL: "https://one.test", CategoryID: cat.ID})
	svc.RecordClick(ctx, site.ID)
	svc.UpdateSettings(ctx, domain.SettingsPatch{Theme: str("dark")})
	svc.ResetConfig(ctx)

	if emits != 5 {
		t.Errorf("observed %d change emissions, want 5", emits)
	}

	// Failed mutations stay silent.
	emits = 0
	if _, err := svc.AddWebsite(ctx, domain.Website{URL: "bad", Name: "Bad", CategoryID: domain.CategoryAll}); err == nil {
		t.Fatal("expected invalid URL error")
	}
	if emits != 0 {
		t.Errorf("failed mutation emitted %d changes, want 0", emits)
	}
}

func TestImportExportThroughService(t *testing.T) {
	src, _ := newTestService(t)
	dst, dstNotifier := newTestService(t)
	ctx := context.Background()

	cat, _ := src.AddCategory(ctx, "Work", "💼", "")
	src.AddWebsite(ctx, domain.Website{Name: "One", URL: "https://one.test", CategoryID: cat.ID})

	emits := 0
	dstNotifier.Subscribe(func() { emits++ })

	if err := dst.ImportConfig(ctx, src.ExportConfig(ctx)); err != nil {
		t.Fatalf("ImportConfig() error = %v", err)
	}
	if emits != 1 {
		t.Errorf("import emitted %d changes, want 1", emits)
	}

	cats := dst.Categories(ctx)
	if len(cats) != 2 || cats[1].Name != "Work" {
		t.Errorf("imported categories = %+v", cats)
	}

	if err := dst.ImportConfig(ctx, "{broken"); err == nil {
		t.Error("ImportConfig() should reject malformed JSON")
	}
}
