package awscostexplorer

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/aws-costpilot/model"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const costMetric = "UnblendedCost"

// discoveryWindowDays is the trailing window used for dimension and tag
// key discovery
const discoveryWindowDays = 30

func NewService(awsconfig aws.Config, logger zerolog.Logger) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return &service{
		client: client,
		logger: logger.With().Str("service", "costexplorer").Logger(),
	}
}

func (s *service) GetGroupedCost(ctx context.Context, window model.DateWindow, groupBy model.Dimension, granularity model.Granularity, filter *model.CostFilter) ([]model.CostRecord, error) {
	if !groupBy.Valid() {
		return nil, unsupportedDimension(groupBy)
	}

	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.Granularity(granularity),
		TimePeriod: &types.DateInterval{
			Start: aws.String(window.StartString()),
			End:   aws.String(window.EndString()),
		},
		Metrics: []string{costMetric},
		GroupBy: []types.GroupDefinition{
			{
				Key:  aws.String(string(groupBy)),
				Type: types.GroupDefinitionTypeDimension,
			},
		},
	}

	expression, err := buildFilterExpression(filter)
	if err != nil {
		return nil, err
	}
	input.Filter = expression

	s.logger.Debug().
		Str("start", window.StartString()).
		Str("end", window.EndString()).
		Str("group_by", string(groupBy)).
		Msg("querying grouped cost")

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, err
	}

	return flattenResults(output.ResultsByTime)
}

func (s *service) GetGroupedCostByTag(ctx context.Context, window model.DateWindow, tagKey string, granularity model.Granularity) ([]model.CostRecord, error) {
	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.Granularity(granularity),
		TimePeriod: &types.DateInterval{
			Start: aws.String(window.StartString()),
			End:   aws.String(window.EndString()),
		},
		Metrics: []string{costMetric},
		GroupBy: []types.GroupDefinition{
			{
				Key:  aws.String(tagKey),
				Type: types.GroupDefinitionTypeTag,
			},
		},
	}

	s.logger.Debug().
		Str("start", window.StartString()).
		Str("end", window.EndString()).
		Str("tag_key", tagKey).
		Msg("querying cost by tag")

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, err
	}

	return flattenResults(output.ResultsByTime)
}

func (s *service) GetDimensionValues(ctx context.Context, dimension model.Dimension) ([]string, error) {
	if !dimension.Valid() {
		return nil, unsupportedDimension(dimension)
	}

	window := trailingWindow(discoveryWindowDays)
	input := &costexplorer.GetDimensionValuesInput{
		Dimension: types.Dimension(dimension),
		TimePeriod: &types.DateInterval{
			Start: aws.String(window.StartString()),
			End:   aws.String(window.EndString()),
		},
	}

	output, err := s.client.GetDimensionValues(ctx, input)
	if err != nil {
		return nil, err
	}

	values := make([]string, 0, len(output.DimensionValues))
	for _, item := range output.DimensionValues {
		if item.Value != nil {
			values = append(values, *item.Value)
		}
	}

	s.logger.Debug().Str("dimension", string(dimension)).Int("count", len(values)).Msg("discovered dimension values")
	return values, nil
}

func (s *service) GetTagKeys(ctx context.Context) ([]string, error) {
	window := trailingWindow(discoveryWindowDays)
	input := &costexplorer.GetTagsInput{
		TimePeriod: &types.DateInterval{
			Start: aws.String(window.StartString()),
			End:   aws.String(window.EndString()),
		},
	}

	output, err := s.client.GetTags(ctx, input)
	if err != nil {
		return nil, err
	}

	return output.Tags, nil
}

func (s *service) GetCostForecast(ctx context.Context, days int) (*model.Forecast, error) {
	today := time.Now()
	start := today.Format(model.DateFormat)
	end := today.AddDate(0, 0, days).Format(model.DateFormat)

	input := &costexplorer.GetCostForecastInput{
		Granularity: types.GranularityMonthly,
		Metric:      types.MetricUnblendedCost,
		TimePeriod: &types.DateInterval{
			Start: aws.String(start),
			End:   aws.String(end),
		},
	}

	output, err := s.client.GetCostForecast(ctx, input)
	if err != nil {
		return nil, err
	}

	if output.Total == nil || output.Total.Amount == nil {
		return nil, &MalformedResponseError{Reason: "forecast total missing", Fragment: "Total"}
	}

	amount, err := decimal.NewFromString(*output.Total.Amount)
	if err != nil {
		return nil, &MalformedResponseError{Reason: "forecast amount not numeric", Fragment: *output.Total.Amount}
	}

	forecast := &model.Forecast{
		Start:     start,
		End:       end,
		MeanValue: amount,
		Unit:      "USD",
	}
	if output.Total.Unit != nil && *output.Total.Unit != "" {
		forecast.Unit = *output.Total.Unit
	}

	return forecast, nil
}

func buildFilterExpression(filter *model.CostFilter) (*types.Expression, error) {
	if filter == nil {
		return nil, nil
	}

	if filter.TagKey != "" {
		return &types.Expression{
			Tags: &types.TagValues{
				Key:    aws.String(filter.TagKey),
				Values: filter.TagValues,
			},
		}, nil
	}

	if !filter.Dimension.Valid() {
		return nil, unsupportedDimension(filter.Dimension)
	}

	return &types.Expression{
		Dimensions: &types.DimensionValues{
			Key:    types.Dimension(filter.Dimension),
			Values: filter.Values,
		},
	}, nil
}

// flattenResults turns the nested ResultsByTime/Groups response into flat
// cost records. Responses missing period or metric structure surface as a
// MalformedResponseError carrying the offending fragment.
func flattenResults(results []types.ResultByTime) ([]model.CostRecord, error) {
	records := make([]model.CostRecord, 0, len(results))

	for _, period := range results {
		if period.TimePeriod == nil || period.TimePeriod.Start == nil {
			return nil, &MalformedResponseError{Reason: "result period missing time range", Fragment: "ResultsByTime.TimePeriod"}
		}
		periodStart := *period.TimePeriod.Start

		for _, group := range period.Groups {
			if len(group.Keys) == 0 {
				return nil, &MalformedResponseError{Reason: "group missing keys", Fragment: periodStart}
			}

			metric, ok := group.Metrics[costMetric]
			if !ok || metric.Amount == nil {
				return nil, &MalformedResponseError{Reason: "group missing " + costMetric + " metric", Fragment: group.Keys[0]}
			}

			amount, err := decimal.NewFromString(*metric.Amount)
			if err != nil {
				return nil, &MalformedResponseError{Reason: "amount not numeric", Fragment: *metric.Amount}
			}

			unit := "USD"
			if metric.Unit != nil && *metric.Unit != "" {
				unit = *metric.Unit
			}

			records = append(records, model.CostRecord{
				PeriodStart: periodStart,
				Key:         group.Keys[0],
				Amount:      amount,
				Unit:        unit,
			})
		}
	}

	return records, nil
}

func trailingWindow(days int) model.DateWindow {
	today := time.Now()
	return model.DateWindow{
		Start: today.AddDate(0, 0, -days),
		End:   today,
	}
}
