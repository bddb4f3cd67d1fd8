package response

import (
	"github.com/elC0mpa/aws-costpilot/model"
)

// ConvertAccountInfo converts model.AccountInfo to response.AccountInfo
func ConvertAccountInfo(info *model.AccountInfo) *AccountInfo {
	if info == nil {
		return nil
	}
	return &AccountInfo{
		Provider:    info.Provider,
		AccountID:   info.AccountID,
		AccountName: info.AccountName,
	}
}

// ConvertCostReport converts ranked service summaries to a response.CostReport
func ConvertCostReport(window model.DateWindow, summaries []model.ServiceCostSummary) *CostReport {
	services := make([]ServiceCost, 0, len(summaries))
	var total float64
	currency := ""

	for _, summary := range summaries {
		services = append(services, convertServiceCost(summary))
		amount, _ := summary.Amount.Float64()
		total += amount
		if currency == "" {
			currency = summary.Unit
		}
	}

	if currency == "" {
		currency = "USD"
	}

	return &CostReport{
		StartDate: window.StartString(),
		EndDate:   window.EndString(),
		Adjusted:  window.Adjusted,
		Services:  services,
		Total:     total,
		Currency:  currency,
	}
}

// ConvertTagBreakdown converts model.TagCostSummary to response.TagBreakdown
func ConvertTagBreakdown(summary *model.TagCostSummary) *TagBreakdown {
	if summary == nil {
		return nil
	}

	values := make([]TagValueCost, 0, len(summary.Values))
	for _, value := range summary.Values {
		cost, _ := value.Cost.Float64()
		services := make([]ServiceCost, 0, len(value.Services))
		for _, svc := range value.Services {
			services = append(services, convertServiceCost(svc))
		}
		values = append(values, TagValueCost{
			Value:      value.Value,
			Cost:       cost,
			Percentage: value.Percentage,
			Services:   services,
		})
	}

	untagged, _ := summary.UntaggedCost.Float64()
	total, _ := summary.TotalCost.Float64()

	return &TagBreakdown{
		TagKey:             summary.TagKey,
		Values:             values,
		UntaggedCost:       untagged,
		UntaggedPercentage: summary.UntaggedPercentage,
		Total:              total,
		Currency:           summary.Unit,
	}
}

// ConvertTrend converts model.Trend to response.CostTrend
func ConvertTrend(trend *model.Trend) *CostTrend {
	if trend == nil {
		return nil
	}

	points := make([]TrendPoint, 0, len(trend.Points))
	for _, point := range trend.Points {
		cost, _ := point.Cost.Float64()
		previous, _ := point.PreviousCost.Float64()
		points = append(points, TrendPoint{
			Period:        point.Period,
			Cost:          cost,
			PreviousCost:  previous,
			PercentChange: point.PercentChange,
			NewSpend:      point.NewSpend,
		})
	}

	return &CostTrend{
		Points:        points,
		TotalChange:   trend.TotalChange,
		AverageChange: trend.AverageChange,
	}
}

// ConvertAnomalies converts model anomalies to response anomalies
func ConvertAnomalies(anomalies []model.Anomaly) []Anomaly {
	converted := make([]Anomaly, 0, len(anomalies))
	for _, anomaly := range anomalies {
		previous, _ := anomaly.PreviousCost.Float64()
		current, _ := anomaly.CurrentCost.Float64()
		contributors := make([]ServiceCost, 0, len(anomaly.TopContributors))
		for _, svc := range anomaly.TopContributors {
			contributors = append(contributors, convertServiceCost(svc))
		}
		converted = append(converted, Anomaly{
			Period:          anomaly.Period,
			PercentChange:   anomaly.PercentChange,
			PreviousCost:    previous,
			CurrentCost:     current,
			Severity:        anomaly.Severity,
			TopContributors: contributors,
		})
	}
	return converted
}

// ConvertForecast converts model.Forecast to response.Forecast
func ConvertForecast(forecast *model.Forecast) *Forecast {
	if forecast == nil {
		return nil
	}
	mean, _ := forecast.MeanValue.Float64()
	return &Forecast{
		StartDate: forecast.Start,
		EndDate:   forecast.End,
		MeanValue: mean,
		Currency:  forecast.Unit,
	}
}

// ConvertResolution converts model.ResolutionResult to response.Resolution
func ConvertResolution(result *model.ResolutionResult, autoApplyThreshold float64) *Resolution {
	if result == nil {
		return nil
	}
	return &Resolution{
		Input:        result.Input,
		ResolvedName: result.ResolvedName,
		Confidence:   result.Confidence,
		AutoApply:    result.AutoApply(autoApplyThreshold),
		Alternatives: result.Alternatives,
		Method:       result.Method,
	}
}

// ConvertSuggestions converts model suggestions to response suggestions
func ConvertSuggestions(suggestions []model.Suggestion) []Suggestion {
	converted := make([]Suggestion, 0, len(suggestions))
	for _, suggestion := range suggestions {
		converted = append(converted, Suggestion{
			Service: suggestion.Service,
			Score:   suggestion.Score,
		})
	}
	return converted
}

// ConvertCatalog converts the known service names to response.Catalog
func ConvertCatalog(services []string) *Catalog {
	return &Catalog{
		Count:    len(services),
		Services: services,
	}
}

func convertServiceCost(summary model.ServiceCostSummary) ServiceCost {
	amount, _ := summary.Amount.Float64()
	periods := make([]PeriodCost, 0, len(summary.Periods))
	for _, period := range summary.Periods {
		periodAmount, _ := period.Amount.Float64()
		periods = append(periods, PeriodCost{
			Period: period.Period,
			Amount: periodAmount,
		})
	}
	return ServiceCost{
		Name:    summary.Service,
		Amount:  amount,
		Unit:    summary.Unit,
		Periods: periods,
	}
}
