// Package view is the presentation read layer. The service returns raw
// storage state; Reader layers the synthetic entries the dashboard
// renders on top of it. Keeping the split structural means no caller has
// to remember which pseudo-categories are real.
package view

import (
	"context"
	"sort"

	"github.com/tabdeck/tabdeck/internal/domain"
	"github.com/tabdeck/tabdeck/internal/service"
)

// FrequentLimit caps the synthetic "frequent" view.
const FrequentLimit = 13

// frequentCategory is the synthetic pseudo-category. Order -1 keeps it
// sorted before every persisted category.
var frequentCategory = domain.Category{
	ID:    domain.CategoryFrequent,
	Name:  "Frequent",
	Icon:  "🔥",
	Order: -1,
}

// Reader serves the read side consumed by rendering surfaces.
type Reader struct {
	svc *service.Service
}

func NewReader(svc *service.Service) *Reader {
	return &Reader{svc: svc}
}

// Categories returns the display category list: the persisted categories
// in order, with the synthetic "frequent" entry injected first when it is
// absent from storage.
func (r *Reader) Categories(ctx context.Context) []domain.Category {
	cats := r.svc.Categories(ctx)
	for _, c := range cats {
		if c.ID == domain.CategoryFrequent {
			return cats
		}
	}
	return append([]domain.Category{frequentCategory}, cats...)
}

// Websites returns the shortcut list for a category as rendered. The
// "frequent" pseudo-category selects clicked websites ranked by
// descending click count (ties by ascending order), truncated to
// FrequentLimit; everything else is the service's filtered, order-sorted
// read.
func (r *Reader) Websites(ctx context.Context, categoryID string) []domain.Website {
	if categoryID != domain.CategoryFrequent {
		return r.svc.Websites(ctx, categoryID)
	}

	all := r.svc.Websites(ctx, domain.CategoryAll)
	clicked := make([]domain.Website, 0, len(all))
	for _, w := range all {
		if w.ClickCount > 0 {
			clicked = append(clicked, w)
		}
	}

	sort.SliceStable(clicked, func(i, j int) bool {
		if clicked[i].ClickCount != clicked[j].ClickCount {
			return clicked[i].ClickCount > clicked[j].ClickCount
		}
		return clicked[i].Order < clicked[j].Order
	})

	if len(clicked) > FrequentLimit {
		clicked = clicked[:FrequentLimit]
	}
	return clicked
}
