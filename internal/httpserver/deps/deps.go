package deps

import (
	"time"

	"github.com/tabdeck/tabdeck/internal/logger"
	"github.com/tabdeck/tabdeck/internal/service"
	"github.com/tabdeck/tabdeck/internal/view"
)

// Deps carries the shared dependencies handed to every route.
type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	// Service is the raw read + mutation surface.
	Service *service.Service

	// Reader is the presentation read layer (synthetic categories,
	// frequent view); rendering surfaces consume this one.
	Reader *view.Reader
}
