package validate

import "github.com/tabdeck/tabdeck/internal/domain"

// Sanitize normalizes a structurally valid document into canonical form:
// order values are floored at zero and background effects are clamped to
// their documented ranges. Nothing else is altered. The function is pure
// and idempotent; cfg is not mutated.
func Sanitize(cfg domain.AppConfig) domain.AppConfig {
	next := cfg.Clone()

	for i := range next.Categories {
		if next.Categories[i].Order < 0 {
			next.Categories[i].Order = 0
		}
	}
	for i := range next.Websites {
		if next.Websites[i].Order < 0 {
			next.Websites[i].Order = 0
		}
	}

	next.Background.Effects.Blur = clamp(next.Background.Effects.Blur, 0, 20)
	next.Background.Effects.Brightness = clamp(next.Background.Effects.Brightness, 0, 200)
	next.Background.Effects.Opacity = clamp(next.Background.Effects.Opacity, 0, 100)

	return next
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
