package awscostexplorer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/aws-costpilot/model"
	"github.com/rs/zerolog"
)

type service struct {
	client *costexplorer.Client
	logger zerolog.Logger
}

// CostService is the billing capability the engines depend on
type CostService interface {
	GetGroupedCost(ctx context.Context, window model.DateWindow, groupBy model.Dimension, granularity model.Granularity, filter *model.CostFilter) ([]model.CostRecord, error)
	GetGroupedCostByTag(ctx context.Context, window model.DateWindow, tagKey string, granularity model.Granularity) ([]model.CostRecord, error)
	GetDimensionValues(ctx context.Context, dimension model.Dimension) ([]string, error)
	GetTagKeys(ctx context.Context) ([]string, error)
	GetCostForecast(ctx context.Context, days int) (*model.Forecast, error)
}
