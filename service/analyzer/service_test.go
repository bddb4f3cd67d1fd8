package analyzer

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elC0mpa/aws-costpilot/model"
)

// stubCostService answers grouped cost queries from canned responses, one
// per call in order
type stubCostService struct {
	groupedResults [][]model.CostRecord
	groupedErrs    []error
	granularities  []model.Granularity

	tagRecords []model.CostRecord
	tagErr     error

	tagKeys    []string
	tagKeysErr error
}

func (s *stubCostService) GetGroupedCost(ctx context.Context, window model.DateWindow, groupBy model.Dimension, granularity model.Granularity, filter *model.CostFilter) ([]model.CostRecord, error) {
	idx := len(s.granularities)
	s.granularities = append(s.granularities, granularity)

	var err error
	if idx < len(s.groupedErrs) {
		err = s.groupedErrs[idx]
	}
	var records []model.CostRecord
	if idx < len(s.groupedResults) {
		records = s.groupedResults[idx]
	}
	return records, err
}

func (s *stubCostService) GetGroupedCostByTag(ctx context.Context, window model.DateWindow, tagKey string, granularity model.Granularity) ([]model.CostRecord, error) {
	return s.tagRecords, s.tagErr
}

func (s *stubCostService) GetDimensionValues(ctx context.Context, dimension model.Dimension) ([]string, error) {
	return nil, nil
}

func (s *stubCostService) GetTagKeys(ctx context.Context) ([]string, error) {
	return s.tagKeys, s.tagKeysErr
}

func (s *stubCostService) GetCostForecast(ctx context.Context, days int) (*model.Forecast, error) {
	return nil, nil
}

func window(t *testing.T) model.DateWindow {
	t.Helper()
	return model.DateWindow{}
}

func TestTopServicesRanksResults(t *testing.T) {
	stub := &stubCostService{
		groupedResults: [][]model.CostRecord{{
			record("2025-06-01", "AWS Lambda", 10),
			record("2025-06-01", "Amazon Simple Storage Service", 40),
		}},
	}
	svc := NewService(stub, zerolog.Nop())

	summaries, err := svc.TopServices(context.Background(), window(t), 5)
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "Amazon Simple Storage Service", summaries[0].Service)
}

func TestTopServicesRetriesWithTrailingWeek(t *testing.T) {
	stub := &stubCostService{
		groupedResults: [][]model.CostRecord{
			nil,
			{record("2025-08-30", "AWS Lambda", 2)},
		},
	}
	svc := NewService(stub, zerolog.Nop())

	summaries, err := svc.TopServices(context.Background(), window(t), 5)
	require.NoError(t, err)

	require.Len(t, stub.granularities, 2)
	assert.Equal(t, model.GranularityMonthly, stub.granularities[0])
	assert.Equal(t, model.GranularityDaily, stub.granularities[1])
	require.Len(t, summaries, 1)
	assert.Equal(t, "AWS Lambda", summaries[0].Service)
}

func TestTopServicesFallbackIsOneShot(t *testing.T) {
	stub := &stubCostService{
		groupedResults: [][]model.CostRecord{nil, nil},
	}
	svc := NewService(stub, zerolog.Nop())

	summaries, err := svc.TopServices(context.Background(), window(t), 5)
	require.NoError(t, err)

	assert.Len(t, stub.granularities, 2)
	assert.Empty(t, summaries)
}

func TestTopServicesDegradesOnProviderError(t *testing.T) {
	stub := &stubCostService{
		groupedErrs: []error{errors.New("throttled")},
	}
	svc := NewService(stub, zerolog.Nop())

	summaries, err := svc.TopServices(context.Background(), window(t), 5)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestTopServicesPropagatesStructuralErrors(t *testing.T) {
	stub := &stubCostService{
		groupedErrs: []error{&MixedCurrencyError{Unit: "USD", OtherUnit: "EUR"}},
	}
	svc := NewService(stub, zerolog.Nop())

	_, err := svc.TopServices(context.Background(), window(t), 5)
	require.Error(t, err)
}

func TestTopServicesZeroLimit(t *testing.T) {
	stub := &stubCostService{}
	svc := NewService(stub, zerolog.Nop())

	summaries, err := svc.TopServices(context.Background(), window(t), 0)
	require.NoError(t, err)

	assert.Empty(t, summaries)
	assert.Empty(t, stub.granularities)
}

func TestServiceDetailsWidensWindowProgressively(t *testing.T) {
	stub := &stubCostService{
		groupedResults: [][]model.CostRecord{
			nil,
			nil,
			{record("2025-01-01", "USW2-BoxUsage:t3.micro", 12)},
		},
	}
	svc := NewService(stub, zerolog.Nop())

	summaries, err := svc.ServiceDetails(context.Background(), "Amazon Elastic Compute Cloud - Compute", window(t))
	require.NoError(t, err)

	assert.Len(t, stub.granularities, 3)
	require.Len(t, summaries, 1)
	assert.Equal(t, "USW2-BoxUsage:t3.micro", summaries[0].Service)
}

func TestCostByTagDegradesToZeroedSummary(t *testing.T) {
	stub := &stubCostService{tagErr: errors.New("unavailable")}
	svc := NewService(stub, zerolog.Nop())

	summary, err := svc.CostByTag(context.Background(), "Environment", window(t))
	require.NoError(t, err)

	assert.Equal(t, "Environment", summary.TagKey)
	assert.Empty(t, summary.Values)
	assert.True(t, summary.TotalCost.IsZero())
}

func TestTrendBuildsMonthlyPoints(t *testing.T) {
	stub := &stubCostService{
		groupedResults: [][]model.CostRecord{{
			record("2025-05-01", "AWS Lambda", 60),
			record("2025-05-01", "Amazon Simple Storage Service", 40),
			record("2025-06-01", "AWS Lambda", 150),
		}},
	}
	svc := NewService(stub, zerolog.Nop())

	trend, err := svc.Trend(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, trend.Points, 1)
	assert.Equal(t, "2025-06-01", trend.Points[0].Period)
	assert.InDelta(t, 50.0, trend.Points[0].PercentChange, 0.001)
}

func TestAnomaliesFlagsLargeJumps(t *testing.T) {
	stub := &stubCostService{
		groupedResults: [][]model.CostRecord{
			{
				record("2025-05-01", "AWS Lambda", 100),
				record("2025-06-01", "AWS Lambda", 230),
			},
			// contributor lookup for the anomalous month
			{record("2025-06-01", "AWS Lambda", 230)},
		},
	}
	svc := NewService(stub, zerolog.Nop())

	anomalies, err := svc.Anomalies(context.Background(), 20, 2)
	require.NoError(t, err)

	require.Len(t, anomalies, 1)
	assert.Equal(t, "2025-06-01", anomalies[0].Period)
	assert.Equal(t, model.SeverityHigh, anomalies[0].Severity)
	require.Len(t, anomalies[0].TopContributors, 1)
	assert.Equal(t, "AWS Lambda", anomalies[0].TopContributors[0].Service)
}

func TestAnomaliesAppliesDefaultThreshold(t *testing.T) {
	stub := &stubCostService{
		groupedResults: [][]model.CostRecord{{
			record("2025-05-01", "AWS Lambda", 100),
			record("2025-06-01", "AWS Lambda", 110),
		}},
	}
	svc := NewService(stub, zerolog.Nop())

	anomalies, err := svc.Anomalies(context.Background(), 0, 2)
	require.NoError(t, err)

	assert.Empty(t, anomalies)
}

func TestAnomaliesMediumSeverity(t *testing.T) {
	stub := &stubCostService{
		groupedResults: [][]model.CostRecord{
			{
				record("2025-05-01", "AWS Lambda", 100),
				record("2025-06-01", "AWS Lambda", 130),
			},
			{record("2025-06-01", "AWS Lambda", 130)},
		},
	}
	svc := NewService(stub, zerolog.Nop())

	anomalies, err := svc.Anomalies(context.Background(), 20, 2)
	require.NoError(t, err)

	require.Len(t, anomalies, 1)
	assert.Equal(t, model.SeverityMedium, anomalies[0].Severity)
}

func TestTagOverviewCollectsEveryKey(t *testing.T) {
	stub := &stubCostService{
		tagKeys:    []string{"Environment"},
		tagRecords: []model.CostRecord{record("2025-06-01", "Environment$prod", 80)},
		groupedResults: [][]model.CostRecord{
			// services behind the prod tag value
			{record("2025-06-01", "AWS Lambda", 80)},
		},
	}
	svc := NewService(stub, zerolog.Nop())

	summaries, err := svc.TagOverview(context.Background(), window(t))
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	require.Len(t, summaries[0].Values, 1)
	assert.Equal(t, "prod", summaries[0].Values[0].Value)
	require.Len(t, summaries[0].Values[0].Services, 1)
	assert.Equal(t, "AWS Lambda", summaries[0].Values[0].Services[0].Service)
}
