package homepage

import (
	"context"
	"fmt"

	"github.com/tabdeck/tabdeck/internal/domain"
	"github.com/tabdeck/tabdeck/internal/logger"
	"github.com/tabdeck/tabdeck/internal/store"
)

// Seeder populates an empty store from a services file.
type Seeder struct {
	loader *Loader
	mapper *Mapper
	store  *store.Store
	log    logger.Logger
}

func NewSeeder(serviceFile string, st *store.Store, log logger.Logger) *Seeder {
	return &Seeder{
		loader: NewLoader(serviceFile),
		mapper: NewMapper(),
		store:  st,
		log:    log,
	}
}

// Seed builds a document from the services file and persists it, but
// only when nothing is stored yet: an existing document is user data and
// is never overwritten by seeding.
func (s *Seeder) Seed(ctx context.Context) error {
	if s.store.HasConfig(ctx) {
		s.log.Debug("config already present, skipping seed")
		return nil
	}

	config, err := s.loader.Load()
	if err != nil {
		return fmt.Errorf("load seed file: %w", err)
	}

	cfg := domain.DefaultConfig()
	categories, websites, err := s.mapper.Map(config, len(cfg.Categories))
	if err != nil {
		return fmt.Errorf("map seed file: %w", err)
	}

	cfg.Categories = append(cfg.Categories, categories...)
	cfg.Websites = append(cfg.Websites, websites...)

	if err := s.store.Save(ctx, cfg); err != nil {
		return fmt.Errorf("save seeded config: %w", err)
	}

	s.log.Info("seeded config from homepage services file",
		logger.Int("categories", len(categories)),
		logger.Int("websites", len(websites)))
	return nil
}
