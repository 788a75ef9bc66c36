package homepage

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/tabdeck/tabdeck/internal/domain"
)

// Mapper converts a parsed services file into categories and websites
// ready to merge into a fresh document.
type Mapper struct{}

func NewMapper() *Mapper {
	return &Mapper{}
}

// Map converts the parsed config. Each group becomes a category (ordered
// after any existing categories, starting at nextOrder); each service
// with an href becomes a website in its group's category, ordered by
// position within the group. Icons are opaque strings; entries without
// an href are skipped.
func (m *Mapper) Map(config ServicesConfig, nextOrder int) ([]domain.Category, []domain.Website, error) {
	var categories []domain.Category
	var websites []domain.Website

	for _, groupMap := range config {
		for groupName, servicesList := range groupMap {
			cat := domain.Category{
				ID:    "cat_" + uuid.NewString(),
				Name:  groupName,
				Order: nextOrder,
			}
			nextOrder++

			siteOrder := 0
			for _, serviceMap := range servicesList {
				for serviceName, props := range serviceMap {
					if props.Href == "" {
						continue
					}
					if !domain.ValidWebsiteURL(props.Href) {
						continue
					}

					websites = append(websites, domain.Website{
						ID:         "site_" + uuid.NewString(),
						Name:       serviceName,
						URL:        props.Href,
						CategoryID: cat.ID,
						Order:      siteOrder,
						Icon:       props.Icon,
						IconType:   iconType(props.Icon),
					})
					siteOrder++
				}
			}

			// Groups with no usable services are dropped.
			if siteOrder > 0 {
				categories = append(categories, cat)
			}
		}
	}

	if len(websites) == 0 {
		return nil, nil, fmt.Errorf("no usable services found in homepage config")
	}

	return categories, websites, nil
}

func iconType(icon string) string {
	if icon == "" {
		return domain.IconAuto
	}
	if domain.ValidWebsiteURL(icon) {
		return domain.IconURL
	}
	// Homepage icon names (like "adguard-home.svg") carry no fetchable
	// location; let the renderer fall back to favicon resolution.
	return domain.IconAuto
}
