package domain

// Well-known category IDs.
const (
	// CategoryAll is the "show everything" pseudo-category.
	// It always exists and can never be deleted.
	CategoryAll = "all"

	// CategoryFrequent is a synthetic, non-persisted pseudo-category
	// listing the most-clicked websites. It is injected by the
	// presentation read layer and never stored.
	CategoryFrequent = "frequent"
)

// Background types accepted by the validator.
const (
	BackgroundGradient  = "gradient"
	BackgroundLocalPath = "local-path"
	BackgroundFile      = "file"
	BackgroundVideo     = "video"
)

// Icon types for websites.
const (
	IconEmoji  = "emoji"
	IconBase64 = "base64"
	IconURL    = "url"
	IconAuto   = "auto" // derive favicon from the website URL at render time
)

// AppConfig is the root configuration document. Exactly one instance is
// persisted, as a single JSON value under one storage key, and it is
// replaced wholesale on every mutation.
type AppConfig struct {
	// Version is opaque to this core. It is carried through unchanged and
	// used to detect incompatible imports. Any non-empty string is
	// currently accepted.
	Version string `json:"version"`

	// Categories are sorted for display by Order, ascending.
	Categories []Category `json:"categories"`

	// Websites each reference exactly one Category by CategoryID.
	Websites []Website `json:"websites"`

	Background BackgroundConfig `json:"background"`
	Settings   Settings         `json:"settings"`
}

// Category is a named grouping for websites.
type Category struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, stable after creation.
	// Example: cat_1b9d6bcd
	ID string `json:"id"`

	// ─────────────────────────────
	// Presentation
	// ─────────────────────────────

	// Name is the display label. Never empty.
	Name string `json:"name"`

	// Icon is an optional short string, typically a single emoji.
	Icon string `json:"icon,omitempty"`

	// Color is an optional accent color string.
	Color string `json:"color,omitempty"`

	// Order defines display position, ascending. Non-negative after
	// sanitization; ties keep insertion order.
	Order int `json:"order"`
}

// Website is a user-defined shortcut entry on the dashboard.
type Website struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, stable after creation.
	// Example: site_9f1c2ab3
	ID string `json:"id"`

	// ─────────────────────────────
	// Target
	// ─────────────────────────────

	// Name is the display label. Never empty.
	Name string `json:"name"`

	// URL is the navigation target. Must start with http:// or https://.
	URL string `json:"url"`

	// CategoryID references an existing Category, or CategoryAll.
	CategoryID string `json:"categoryId"`

	// ─────────────────────────────
	// Presentation
	// ─────────────────────────────

	// Order defines display position within any filtered set, ascending.
	// New values are assigned per-category.
	Order int `json:"order"`

	// Icon holds whatever representation the editing UI produced:
	// an emoji, an encoded image payload, or an external URL.
	// This core stores it as opaque data.
	Icon string `json:"icon,omitempty"`

	// IconType tags how Icon should be interpreted: emoji, base64, url
	// or auto (favicon derived from URL at render time, not stored).
	IconType string `json:"iconType,omitempty"`

	// Color is an optional background tint.
	Color string `json:"color,omitempty"`

	// ─────────────────────────────
	// Usage tracking
	// ─────────────────────────────

	// ClickCount is incremented each time the shortcut is activated.
	// It is the sort key for the synthetic "frequent" view.
	ClickCount int `json:"clickCount"`
}

// BackgroundConfig describes the page backdrop.
type BackgroundConfig struct {
	// Type is one of gradient, local-path, file or video.
	Type string `json:"type"`

	// Value is interpreted per Type: a local path, file URL or video URL.
	// Omitted for gradients.
	Value string `json:"value,omitempty"`

	// Gradient is only meaningful when Type is gradient.
	Gradient *GradientConfig `json:"gradient,omitempty"`

	// Effects are always clamped to their documented ranges on sanitize.
	Effects BackgroundEffects `json:"effects"`
}

// GradientConfig holds an ordered sequence of 2-5 color stops and an angle.
type GradientConfig struct {
	Colors []string `json:"colors"`
	Angle  int      `json:"angle,omitempty"` // degrees, 0-360
}

// BackgroundEffects are the visual filter parameters.
type BackgroundEffects struct {
	Blur       int `json:"blur"`       // 0-20
	Brightness int `json:"brightness"` // 0-200
	Opacity    int `json:"opacity"`    // 0-100
}

// Settings holds user preferences.
type Settings struct {
	// ActiveCategory references a Category ID, CategoryAll or
	// CategoryFrequent. An invalid reference is tolerated and simply
	// yields an empty filtered website list.
	ActiveCategory string `json:"activeCategory"`

	Theme    string `json:"theme"` // light | dark | auto
	Language string `json:"language"`

	WebsiteNameColor string `json:"websiteNameColor,omitempty"`
	HeaderTextColor  string `json:"headerTextColor,omitempty"`

	HeaderLinks []HeaderLink `json:"headerLinks,omitempty"`
}

// HeaderLink is a quick link shown in the page header.
type HeaderLink struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}
