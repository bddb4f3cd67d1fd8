package catalog

import (
	"context"
	"time"

	awscostexplorer "github.com/elC0mpa/aws-costpilot/service/aws/costexplorer"
	"github.com/rs/zerolog"
)

// DefaultTTL is how long a discovered service list stays fresh
const DefaultTTL = 24 * time.Hour

// DefaultCacheFile is the cache blob name used when no path is configured
const DefaultCacheFile = "aws_services_cache.json"

type service struct {
	store       Store
	ttl         time.Duration
	costService awscostexplorer.CostService
	fallback    []string
	logger      zerolog.Logger
}

// CatalogService provides the TTL-bounded list of service names known to
// the account
type CatalogService interface {
	Get(ctx context.Context) ([]string, error)
	Invalidate() error
}
