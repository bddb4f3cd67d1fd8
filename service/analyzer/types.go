package analyzer

import (
	"context"

	awscostexplorer "github.com/elC0mpa/aws-costpilot/service/aws/costexplorer"
	"github.com/rs/zerolog"

	"github.com/elC0mpa/aws-costpilot/model"
)

type service struct {
	costService awscostexplorer.CostService
	logger      zerolog.Logger
}

// AnalyzerService turns grouped billing responses into decision-ready
// summaries
type AnalyzerService interface {
	TopServices(ctx context.Context, window model.DateWindow, limit int) ([]model.ServiceCostSummary, error)
	ServiceDetails(ctx context.Context, serviceName string, window model.DateWindow) ([]model.ServiceCostSummary, error)
	CostByTag(ctx context.Context, tagKey string, window model.DateWindow) (*model.TagCostSummary, error)
	TagOverview(ctx context.Context, window model.DateWindow) ([]model.TagCostSummary, error)
	Trend(ctx context.Context, months int) (*model.Trend, error)
	Anomalies(ctx context.Context, thresholdPercent float64, months int) ([]model.Anomaly, error)
}
