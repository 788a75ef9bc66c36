package domain

// Patch types make the shallow-merge mutation contract explicit: a nil
// field means "keep the current value". The merge is exactly one level
// deep per sub-object.

// ConfigPatch is the generic document update. Categories and Websites,
// when present, replace the current slices wholesale; Background and
// Settings are merged one level deep. This asymmetry is intentional:
// callers mutating the two collections are expected to pass the full
// recomputed slice.
type ConfigPatch struct {
	Version    *string          `json:"version,omitempty"`
	Categories []Category       `json:"categories,omitempty"`
	Websites   []Website        `json:"websites,omitempty"`
	Background *BackgroundPatch `json:"background,omitempty"`
	Settings   *SettingsPatch   `json:"settings,omitempty"`
}

// CategoryPatch updates presentation fields of a single category.
// The ID is immutable and not patchable.
type CategoryPatch struct {
	Name  *string `json:"name,omitempty"`
	Icon  *string `json:"icon,omitempty"`
	Color *string `json:"color,omitempty"`
	Order *int    `json:"order,omitempty"`
}

// WebsitePatch updates fields of a single website. The ID is immutable.
type WebsitePatch struct {
	Name       *string `json:"name,omitempty"`
	URL        *string `json:"url,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
	Order      *int    `json:"order,omitempty"`
	Icon       *string `json:"icon,omitempty"`
	IconType   *string `json:"iconType,omitempty"`
	Color      *string `json:"color,omitempty"`
	ClickCount *int    `json:"clickCount,omitempty"`
}

// BackgroundPatch merges one level deep: Gradient and Effects, when
// present, replace their current sub-values entirely.
type BackgroundPatch struct {
	Type     *string            `json:"type,omitempty"`
	Value    *string            `json:"value,omitempty"`
	Gradient *GradientConfig    `json:"gradient,omitempty"`
	Effects  *BackgroundEffects `json:"effects,omitempty"`
}

// SettingsPatch merges one level deep: HeaderLinks, when present,
// replaces the current slice entirely.
type SettingsPatch struct {
	ActiveCategory   *string      `json:"activeCategory,omitempty"`
	Theme            *string      `json:"theme,omitempty"`
	Language         *string      `json:"language,omitempty"`
	WebsiteNameColor *string      `json:"websiteNameColor,omitempty"`
	HeaderTextColor  *string      `json:"headerTextColor,omitempty"`
	HeaderLinks      []HeaderLink `json:"headerLinks,omitempty"`
}

// Apply returns a copy of cfg with the patch merged in. cfg is not mutated.
func (p ConfigPatch) Apply(cfg AppConfig) AppConfig {
	next := cfg.Clone()
	if p.Version != nil {
		next.Version = *p.Version
	}
	if p.Categories != nil {
		next.Categories = cloneSlice(p.Categories)
	}
	if p.Websites != nil {
		next.Websites = cloneSlice(p.Websites)
	}
	if p.Background != nil {
		next.Background = p.Background.Apply(next.Background)
	}
	if p.Settings != nil {
		next.Settings = p.Settings.Apply(next.Settings)
	}
	return next
}

// Apply merges the patch onto cat and returns the result.
func (p CategoryPatch) Apply(cat Category) Category {
	if p.Name != nil {
		cat.Name = *p.Name
	}
	if p.Icon != nil {
		cat.Icon = *p.Icon
	}
	if p.Color != nil {
		cat.Color = *p.Color
	}
	if p.Order != nil {
		cat.Order = *p.Order
	}
	return cat
}

// Apply merges the patch onto site and returns the result.
func (p WebsitePatch) Apply(site Website) Website {
	if p.Name != nil {
		site.Name = *p.Name
	}
	if p.URL != nil {
		site.URL = *p.URL
	}
	if p.CategoryID != nil {
		site.CategoryID = *p.CategoryID
	}
	if p.Order != nil {
		site.Order = *p.Order
	}
	if p.Icon != nil {
		site.Icon = *p.Icon
	}
	if p.IconType != nil {
		site.IconType = *p.IconType
	}
	if p.Color != nil {
		site.Color = *p.Color
	}
	if p.ClickCount != nil {
		site.ClickCount = *p.ClickCount
	}
	return site
}

// Apply merges the patch onto bg and returns the result.
func (p BackgroundPatch) Apply(bg BackgroundConfig) BackgroundConfig {
	next := bg.Clone()
	if p.Type != nil {
		next.Type = *p.Type
	}
	if p.Value != nil {
		next.Value = *p.Value
	}
	if p.Gradient != nil {
		g := *p.Gradient
		g.Colors = cloneSlice(p.Gradient.Colors)
		next.Gradient = &g
	}
	if p.Effects != nil {
		next.Effects = *p.Effects
	}
	return next
}

// Apply merges the patch onto s and returns the result.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.ActiveCategory != nil {
		s.ActiveCategory = *p.ActiveCategory
	}
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.WebsiteNameColor != nil {
		s.WebsiteNameColor = *p.WebsiteNameColor
	}
	if p.HeaderTextColor != nil {
		s.HeaderTextColor = *p.HeaderTextColor
	}
	if p.HeaderLinks != nil {
		s.HeaderLinks = cloneSlice(p.HeaderLinks)
	}
	return s
}

// cloneSlice copies a slice while preserving nilness: an empty slice
// stays empty, not nil, so the copy marshals to [] rather than null.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// Clone returns a deep copy of the document, so callers can compute a
// replacement value without mutating the original.
func (c AppConfig) Clone() AppConfig {
	next := c
	next.Categories = cloneSlice(c.Categories)
	next.Websites = cloneSlice(c.Websites)
	next.Background = c.Background.Clone()
	next.Settings.HeaderLinks = cloneSlice(c.Settings.HeaderLinks)
	return next
}

// Clone returns a deep copy of the background configuration.
func (b BackgroundConfig) Clone() BackgroundConfig {
	next := b
	if b.Gradient != nil {
		g := *b.Gradient
		g.Colors = cloneSlice(b.Gradient.Colors)
		next.Gradient = &g
	}
	return next
}
