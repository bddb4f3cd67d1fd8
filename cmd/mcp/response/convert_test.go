package response

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elC0mpa/aws-costpilot/model"
)

func TestConvertCostReport(t *testing.T) {
	window := model.DateWindow{
		Start:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Adjusted: true,
	}
	summaries := []model.ServiceCostSummary{
		{Service: "AWS Lambda", Amount: decimal.NewFromFloat(10.5), Unit: "USD"},
		{Service: "Amazon Simple Storage Service", Amount: decimal.NewFromInt(40), Unit: "USD"},
	}

	report := ConvertCostReport(window, summaries)

	assert.Equal(t, "2025-06-01", report.StartDate)
	assert.Equal(t, "2025-07-01", report.EndDate)
	assert.True(t, report.Adjusted)
	require.Len(t, report.Services, 2)
	assert.InDelta(t, 50.5, report.Total, 0.001)
	assert.Equal(t, "USD", report.Currency)
}

func TestConvertCostReportEmpty(t *testing.T) {
	report := ConvertCostReport(model.DateWindow{}, nil)

	assert.Empty(t, report.Services)
	assert.Zero(t, report.Total)
	assert.Equal(t, "USD", report.Currency)
}

func TestConvertResolution(t *testing.T) {
	result := &model.ResolutionResult{
		Input:        "lambdaa",
		ResolvedName: "AWS Lambda",
		Confidence:   0.86,
		Alternatives: []string{"Amazon Lightsail"},
		Method:       model.ResolutionFuzzy,
	}

	converted := ConvertResolution(result, 0.8)

	assert.True(t, converted.AutoApply)
	assert.Equal(t, "AWS Lambda", converted.ResolvedName)
	assert.Equal(t, []string{"Amazon Lightsail"}, converted.Alternatives)
}

func TestConvertTagBreakdown(t *testing.T) {
	summary := &model.TagCostSummary{
		TagKey: "Environment",
		Values: []model.TagValueCost{
			{Value: "prod", Cost: decimal.NewFromInt(80), Percentage: 80},
		},
		UntaggedCost:       decimal.NewFromInt(20),
		UntaggedPercentage: 20,
		TotalCost:          decimal.NewFromInt(100),
		Unit:               "USD",
	}

	breakdown := ConvertTagBreakdown(summary)

	require.Len(t, breakdown.Values, 1)
	assert.InDelta(t, 80.0, breakdown.Values[0].Cost, 0.001)
	assert.InDelta(t, 20.0, breakdown.UntaggedCost, 0.001)
	assert.InDelta(t, 100.0, breakdown.Total, 0.001)
}
