package analyzer

import (
	"context"

	awscostexplorer "github.com/elC0mpa/aws-costpilot/service/aws/costexplorer"
	"github.com/rs/zerolog"

	"github.com/elC0mpa/aws-costpilot/model"
	"github.com/elC0mpa/aws-costpilot/utils"
)

// fallbackWindowDays is the strictly smaller trailing window used for the
// one-shot retry when a query returns no records
const fallbackWindowDays = 7

// defaultAnomalyThreshold is the percent change that characterizes an
// anomaly when the caller supplies none
const defaultAnomalyThreshold = 20.0

const anomalyContributors = 3

// detailFallbackDays are the progressively larger windows tried when a
// service has no cost data in the requested window
var detailFallbackDays = []int{90, 180, 365}

func NewService(costService awscostexplorer.CostService, logger zerolog.Logger) *service {
	return &service{
		costService: costService,
		logger:      logger.With().Str("service", "analyzer").Logger(),
	}
}

func (s *service) TopServices(ctx context.Context, window model.DateWindow, limit int) ([]model.ServiceCostSummary, error) {
	if limit <= 0 {
		return []model.ServiceCostSummary{}, nil
	}

	records, err := s.costService.GetGroupedCost(ctx, window, model.DimensionService, model.GranularityMonthly, nil)
	if err != nil {
		if structural(err) {
			return nil, err
		}
		s.logger.Warn().Err(err).Msg("cost query failed, returning empty summary")
		return []model.ServiceCostSummary{}, nil
	}

	if len(records) == 0 {
		fallback := utils.LastNDaysWindow(fallbackWindowDays)
		s.logger.Info().
			Str("start", fallback.StartString()).
			Str("end", fallback.EndString()).
			Msg("no records in requested window, retrying with trailing week")

		records, err = s.costService.GetGroupedCost(ctx, fallback, model.DimensionService, model.GranularityDaily, nil)
		if err != nil {
			if structural(err) {
				return nil, err
			}
			return []model.ServiceCostSummary{}, nil
		}
	}

	return rankServices(records, limit)
}

func (s *service) ServiceDetails(ctx context.Context, serviceName string, window model.DateWindow) ([]model.ServiceCostSummary, error) {
	filter := &model.CostFilter{
		Dimension: model.DimensionService,
		Values:    []string{serviceName},
	}

	records, err := s.costService.GetGroupedCost(ctx, window, model.DimensionUsageType, model.GranularityMonthly, filter)
	if err != nil {
		if structural(err) {
			return nil, err
		}
		s.logger.Warn().Err(err).Str("aws_service", serviceName).Msg("service detail query failed")
		return []model.ServiceCostSummary{}, nil
	}

	// widen the window step by step before giving up; a service may only
	// have older cost data
	for _, days := range detailFallbackDays {
		if len(records) > 0 {
			break
		}
		wider := utils.LastNDaysWindow(days)
		records, err = s.costService.GetGroupedCost(ctx, wider, model.DimensionUsageType, model.GranularityMonthly, filter)
		if err != nil {
			if structural(err) {
				return nil, err
			}
			return []model.ServiceCostSummary{}, nil
		}
	}

	return sumServices(records)
}

func (s *service) CostByTag(ctx context.Context, tagKey string, window model.DateWindow) (*model.TagCostSummary, error) {
	records, err := s.costService.GetGroupedCostByTag(ctx, window, tagKey, model.GranularityMonthly)
	if err != nil {
		if structural(err) {
			return nil, err
		}
		s.logger.Warn().Err(err).Str("tag_key", tagKey).Msg("tag cost query failed, returning empty summary")
		records = nil
	}

	return buildTagSummary(tagKey, records)
}

func (s *service) TagOverview(ctx context.Context, window model.DateWindow) ([]model.TagCostSummary, error) {
	keys, err := s.costService.GetTagKeys(ctx)
	if err != nil {
		if structural(err) {
			return nil, err
		}
		s.logger.Warn().Err(err).Msg("tag key discovery failed")
		return []model.TagCostSummary{}, nil
	}

	summaries := make([]model.TagCostSummary, 0, len(keys))
	for _, key := range keys {
		summary, err := s.CostByTag(ctx, key, window)
		if err != nil {
			return nil, err
		}

		for i, value := range summary.Values {
			services, err := s.servicesForTagValue(ctx, key, value.Value, window)
			if err != nil {
				return nil, err
			}
			summary.Values[i].Services = services
		}

		summaries = append(summaries, *summary)
	}

	return summaries, nil
}

func (s *service) Trend(ctx context.Context, months int) (*model.Trend, error) {
	window := utils.LastNMonthsWindow(months)

	records, err := s.costService.GetGroupedCost(ctx, window, model.DimensionService, model.GranularityMonthly, nil)
	if err != nil {
		if structural(err) {
			return nil, err
		}
		s.logger.Warn().Err(err).Msg("trend query failed, returning empty trend")
		return &model.Trend{Points: []model.TrendPoint{}}, nil
	}

	totals, err := monthlyTotals(records)
	if err != nil {
		return nil, err
	}

	return buildTrend(totals), nil
}

func (s *service) Anomalies(ctx context.Context, thresholdPercent float64, months int) ([]model.Anomaly, error) {
	if thresholdPercent <= 0 {
		thresholdPercent = defaultAnomalyThreshold
	}

	trend, err := s.Trend(ctx, months)
	if err != nil {
		return nil, err
	}

	anomalies := []model.Anomaly{}
	for _, point := range trend.Points {
		if point.PercentChange <= thresholdPercent {
			continue
		}

		severity := model.SeverityMedium
		if point.PercentChange > 50 {
			severity = model.SeverityHigh
		}

		anomaly := model.Anomaly{
			Period:        point.Period,
			PercentChange: point.PercentChange,
			PreviousCost:  point.PreviousCost,
			CurrentCost:   point.Cost,
			Severity:      severity,
		}

		if window, err := utils.MonthWindow(point.Period); err == nil {
			contributors, err := s.TopServices(ctx, window, anomalyContributors)
			if err == nil {
				anomaly.TopContributors = contributors
			}
		}

		anomalies = append(anomalies, anomaly)
	}

	return anomalies, nil
}

func (s *service) servicesForTagValue(ctx context.Context, tagKey, tagValue string, window model.DateWindow) ([]model.ServiceCostSummary, error) {
	filter := &model.CostFilter{
		TagKey:    tagKey,
		TagValues: []string{tagValue},
	}

	records, err := s.costService.GetGroupedCost(ctx, window, model.DimensionService, model.GranularityMonthly, filter)
	if err != nil {
		if structural(err) {
			return nil, err
		}
		s.logger.Warn().Err(err).Str("tag_key", tagKey).Str("tag_value", tagValue).Msg("tag value service query failed")
		return []model.ServiceCostSummary{}, nil
	}

	return sumServices(records)
}
