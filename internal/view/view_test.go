package view

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/tabdeck/tabdeck/internal/domain"
	"github.com/tabdeck/tabdeck/internal/logger"
	"github.com/tabdeck/tabdeck/internal/notify"
	"github.com/tabdeck/tabdeck/internal/service"
	"github.com/tabdeck/tabdeck/internal/store"
	"github.com/tabdeck/tabdeck/internal/store/file"
)

func newTestReader(t *testing.T) (*Reader, *service.Service) {
	t.Helper()
	kv := file.New(filepath.Join(t.TempDir(), "config.json"))
	st := store.New(kv, logger.Nop())
	svc := service.New(st, notify.New(logger.Nop()), logger.Nop())
	return NewReader(svc), svc
}

func TestCategoriesInjectsFrequentFirst(t *testing.T) {
	r, svc := newTestReader(t)
	ctx := context.Background()

	if _, err := svc.AddCategory(ctx, "Work", "💼", ""); err != nil {
		t.Fatal(err)
	}

	cats := r.Categories(ctx)
	if len(cats) != 3 {
		t.Fatalf("Categories() returned %d entries, want 3", len(cats))
	}
	if cats[0].ID != domain.CategoryFrequent {
		t.Errorf("first category = %q, want frequent", cats[0].ID)
	}
	if cats[1].ID != domain.CategoryAll || cats[2].Name != "Work" {
		t.Errorf("persisted categories out of order: %v", []string{cats[1].ID, cats[2].ID})
	}

	// The synthetic entry never reaches raw reads.
	for _, c := range svc.Categories(ctx) {
		if c.ID == domain.CategoryFrequent {
			t.Error("frequent leaked into the raw category list")
		}
	}
}

func TestCategoriesNoDoubleInjection(t *testing.T) {
	r, svc := newTestReader(t)
	ctx := context.Background()

	// A persisted category holding the reserved ID wins over injection.
	err := svc.UpdateConfig(ctx, domain.ConfigPatch{
		Categories: []domain.Category{
			{ID: domain.CategoryAll, Name: "All", Order: 0},
			{ID: domain.CategoryFrequent, Name: "Pinned", Order: 1},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	cats := r.Categories(ctx)
	seen := 0
	for _, c := range cats {
		if c.ID == domain.CategoryFrequent {
			seen++
		}
	}
	if seen != 1 {
		t.Errorf("frequent appears %d times, want 1", seen)
	}
}

func TestFrequentWebsitesRanking(t *testing.T) {
	r, svc := newTestReader(t)
	ctx := context.Background()

	// Click counts 0, 5, 5, 2 over orders 0..3: the unclicked site drops
	// out, the tie at 5 resolves by order, the straggler comes last.
	clicks := []int{0, 5, 5, 2}
	ids := make([]string, len(clicks))
	for i, n := range clicks {
		site, err := svc.AddWebsite(ctx, domain.Website{
			Name:       fmt.Sprintf("Site %d", i),
			URL:        fmt.Sprintf("https://site%d.test", i),
			CategoryID: domain.CategoryAll,
		})
		if err != nil {
			t.Fatal(err)
		}
		ids[i] = site.ID
		for j := 0; j < n; j++ {
			if err := svc.RecordClick(ctx, site.ID); err != nil {
				t.Fatal(err)
			}
		}
	}

	got := r.Websites(ctx, domain.CategoryFrequent)
	if len(got) != 3 {
		t.Fatalf("frequent view has %d entries, want 3", len(got))
	}
	want := []string{ids[1], ids[2], ids[3]}
	for i := range want {
		if got[i].ID != want[i] {
			t.Errorf("frequent[%d] = %q (%d clicks), want %q", i, got[i].ID, got[i].ClickCount, want[i])
		}
	}
}

func TestFrequentWebsitesTruncated(t *testing.T) {
	r, svc := newTestReader(t)
	ctx := context.Background()

	for i := 0; i < FrequentLimit+4; i++ {
		site, err := svc.AddWebsite(ctx, domain.Website{
			Name:       fmt.Sprintf("Site %d", i),
			URL:        fmt.Sprintf("https://site%d.test", i),
			CategoryID: domain.CategoryAll,
		})
		if err != nil {
			t.Fatal(err)
		}
		// More clicks for later sites so the cut point is deterministic.
		for j := 0; j <= i; j++ {
			if err := svc.RecordClick(ctx, site.ID); err != nil {
				t.Fatal(err)
			}
		}
	}

	got := r.Websites(ctx, domain.CategoryFrequent)
	if len(got) != FrequentLimit {
		t.Fatalf("frequent view has %d entries, want %d", len(got), FrequentLimit)
	}
	if got[0].ClickCount != FrequentLimit+4 {
		t.Errorf("top entry has %d clicks, want %d", got[0].ClickCount, FrequentLimit+4)
	}
}

func TestWebsitesDelegatesForRealCategories(t *testing.T) {
	r, svc := newTestReader(t)
	ctx := context.Background()

	cat, _ := svc.AddCategory(ctx, "Work", "", "")
	svc.AddWebsite(ctx, domain.Website{Name: "One", URL: "https://one.test", CategoryID: cat.ID})
	svc.AddWebsite(ctx, domain.Website{Name: "Two", URL: "https://two.test", CategoryID: domain.CategoryAll})

	if got := r.Websites(ctx, cat.ID); len(got) != 1 || got[0].Name != "One" {
		t.Errorf("Websites(%q) = %+v, want the single Work site", cat.ID, got)
	}
	if got := r.Websites(ctx, ""); len(got) != 2 {
		t.Errorf("Websites(\"\") = %d entries, want 2", len(got))
	}
}
