package domain

// DefaultVersion is stamped on freshly created documents.
const DefaultVersion = "1.0.0"

// DefaultConfig returns the bundled default document used when nothing is
// persisted yet or the persisted document is unusable. It is always valid
// by construction.
func DefaultConfig() AppConfig {
	return AppConfig{
		Version: DefaultVersion,
		Categories: []Category{
			{ID: CategoryAll, Name: "All", Icon: "🏠", Order: 0},
		},
		Websites: []Website{},
		Background: BackgroundConfig{
			Type: BackgroundGradient,
			Gradient: &GradientConfig{
				Colors: []string{"#667eea", "#764ba2"},
				Angle:  135,
			},
			Effects: BackgroundEffects{
				Blur:       0,
				Brightness: 100,
				Opacity:    100,
			},
		},
		Settings: Settings{
			ActiveCategory: CategoryAll,
			Theme:          "auto",
			Language:       "en-US",
		},
	}
}
