package service

import (
	"context"

	"github.com/elC0mpa/aws-costpilot/model"
)

// IdentityService provides cloud account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// CostAnalysisService provides billing aggregation views
type CostAnalysisService interface {
	TopServices(ctx context.Context, window model.DateWindow, limit int) ([]model.ServiceCostSummary, error)
	CostByTag(ctx context.Context, tagKey string, window model.DateWindow) (*model.TagCostSummary, error)
	TagOverview(ctx context.Context, window model.DateWindow) ([]model.TagCostSummary, error)
	Trend(ctx context.Context, months int) (*model.Trend, error)
	Anomalies(ctx context.Context, thresholdPercent float64, months int) ([]model.Anomaly, error)
}

// NameResolutionService maps informal service names to canonical ones
type NameResolutionService interface {
	Resolve(ctx context.Context, input string) (*model.ResolutionResult, error)
	Suggest(ctx context.Context, partial string, limit int) ([]model.Suggestion, error)
}
