package model

import "github.com/shopspring/decimal"

// CostRecord is a single (period, grouping key, amount, unit) tuple taken
// from one group of a grouped Cost Explorer response
type CostRecord struct {
	PeriodStart string
	Key         string
	Amount      decimal.Decimal
	Unit        string
}

// PeriodCost is the cost attributed to one billing period
type PeriodCost struct {
	Period string          `json:"period"`
	Amount decimal.Decimal `json:"amount"`
}

// ServiceCostSummary is the summed cost of one service across all periods
// of a query window
type ServiceCostSummary struct {
	Service string          `json:"service"`
	Amount  decimal.Decimal `json:"amount"`
	Unit    string          `json:"unit"`
	Periods []PeriodCost    `json:"periods,omitempty"`
}

// TagValueCost is the cost attributed to one value of a tag key
type TagValueCost struct {
	Value      string               `json:"tag_value"`
	Cost       decimal.Decimal      `json:"cost"`
	Percentage float64              `json:"percentage"`
	Services   []ServiceCostSummary `json:"services,omitempty"`
}

// TagCostSummary breaks a window's cost down by the values of one tag key,
// with records lacking the tag merged into the untagged bucket
type TagCostSummary struct {
	TagKey             string          `json:"tag_key"`
	Values             []TagValueCost  `json:"tag_values"`
	UntaggedCost       decimal.Decimal `json:"untagged_cost"`
	UntaggedPercentage float64         `json:"untagged_percentage"`
	TotalCost          decimal.Decimal `json:"total_cost"`
	Unit               string          `json:"unit"`
}

// TrendPoint compares one period's total cost against the previous period.
// NewSpend marks periods where cost appeared after a zero-cost period; the
// percent change is then the capped sentinel rather than a real ratio.
type TrendPoint struct {
	Period        string          `json:"period"`
	Cost          decimal.Decimal `json:"cost"`
	PreviousCost  decimal.Decimal `json:"previous_cost"`
	PercentChange float64         `json:"percent_change"`
	NewSpend      bool            `json:"new_spend,omitempty"`
}

// Trend is a period-over-period view of total cost
type Trend struct {
	Points        []TrendPoint `json:"trends"`
	TotalChange   float64      `json:"total_change"`
	AverageChange float64      `json:"average_change"`
}

// Anomaly is a trend point whose percent change exceeded the caller's
// threshold
type Anomaly struct {
	Period          string               `json:"period"`
	PercentChange   float64              `json:"percent_change"`
	PreviousCost    decimal.Decimal      `json:"previous_cost"`
	CurrentCost     decimal.Decimal      `json:"current_cost"`
	Severity        string               `json:"severity"`
	TopContributors []ServiceCostSummary `json:"top_contributors,omitempty"`
}

// Forecast is a predicted cost for an upcoming period
type Forecast struct {
	Start     string          `json:"start"`
	End       string          `json:"end"`
	MeanValue decimal.Decimal `json:"mean_value"`
	Unit      string          `json:"unit"`
}

const (
	// SeverityHigh marks anomalies above a 50% period-over-period increase
	SeverityHigh = "high"
	// SeverityMedium marks anomalies above the caller threshold but at or
	// below 50%
	SeverityMedium = "medium"
)
