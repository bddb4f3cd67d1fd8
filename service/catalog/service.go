package catalog

import (
	"context"
	"errors"
	"time"

	awscostexplorer "github.com/elC0mpa/aws-costpilot/service/aws/costexplorer"
	"github.com/rs/zerolog"

	"github.com/elC0mpa/aws-costpilot/model"
)

// ErrNoCatalogSource is returned when discovery fails and no cached or
// static data exists at all
var ErrNoCatalogSource = errors.New("no service catalog source available")

// NewService builds a catalog backed by store, refreshing via the cost
// service when the record is older than ttl. fallback is the static list
// returned when discovery fails; resolution degrades to it instead of
// failing.
func NewService(store Store, ttl time.Duration, costService awscostexplorer.CostService, fallback []string, logger zerolog.Logger) *service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &service{
		store:       store,
		ttl:         ttl,
		costService: costService,
		fallback:    fallback,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

func (s *service) Get(ctx context.Context) ([]string, error) {
	record, err := s.store.Load()
	if err != nil {
		s.logger.Warn().Err(err).Msg("could not read catalog cache")
	}

	if record != nil {
		age := time.Since(record.CachedAt)
		if age < s.ttl {
			s.logger.Debug().Dur("age", age).Msg("using cached service catalog")
			return record.Services, nil
		}
		s.logger.Debug().Dur("age", age).Msg("catalog cache expired, rediscovering")
	}

	return s.refresh(ctx)
}

func (s *service) Invalidate() error {
	return s.store.Delete()
}

func (s *service) refresh(ctx context.Context) ([]string, error) {
	services, err := s.costService.GetDimensionValues(ctx, model.DimensionService)
	if err != nil {
		s.logger.Warn().Err(err).Msg("service discovery failed, falling back to static names")
		if len(s.fallback) == 0 {
			return nil, errors.Join(ErrNoCatalogSource, err)
		}
		return s.fallback, nil
	}

	record := &model.CatalogRecord{
		CachedAt: time.Now(),
		Services: services,
	}
	if err := s.store.Save(record); err != nil {
		// a failed write only costs a rediscovery next time
		s.logger.Warn().Err(err).Msg("could not persist catalog cache")
	}

	s.logger.Info().Int("count", len(services)).Msg("discovered account services")
	return services, nil
}
