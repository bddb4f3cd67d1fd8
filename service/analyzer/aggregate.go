package analyzer

import (
	"sort"
	"strings"

	"github.com/elC0mpa/aws-costpilot/model"
	"github.com/shopspring/decimal"
)

// newSpendSentinel is the percent change reported when cost appears after
// a zero-cost period. The real ratio is undefined, so the value is capped
// and the point is flagged as new spend instead.
const newSpendSentinel = 100.0

var hundred = decimal.NewFromInt(100)

// sumServices rolls records up per grouping key, summing amounts across
// all periods. Summation is commutative; ordering of the input does not
// matter. Output is sorted descending by amount with a lexicographic
// tie-break on the key.
func sumServices(records []model.CostRecord) ([]model.ServiceCostSummary, error) {
	totals := make(map[string]*model.ServiceCostSummary)
	unit := ""

	for _, record := range records {
		if unit == "" {
			unit = record.Unit
		} else if record.Unit != unit {
			return nil, &MixedCurrencyError{Unit: unit, OtherUnit: record.Unit}
		}

		summary, ok := totals[record.Key]
		if !ok {
			summary = &model.ServiceCostSummary{
				Service: record.Key,
				Amount:  decimal.Zero,
				Unit:    record.Unit,
			}
			totals[record.Key] = summary
		}
		summary.Amount = summary.Amount.Add(record.Amount)
		summary.Periods = append(summary.Periods, model.PeriodCost{
			Period: record.PeriodStart,
			Amount: record.Amount,
		})
	}

	summaries := make([]model.ServiceCostSummary, 0, len(totals))
	for _, summary := range totals {
		sort.Slice(summary.Periods, func(i, j int) bool {
			return summary.Periods[i].Period < summary.Periods[j].Period
		})
		summaries = append(summaries, *summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].Amount.Equal(summaries[j].Amount) {
			return summaries[i].Amount.GreaterThan(summaries[j].Amount)
		}
		return summaries[i].Service < summaries[j].Service
	})

	return summaries, nil
}

// rankServices is sumServices truncated to the top limit entries. A limit
// of zero or less yields an empty result, not an error.
func rankServices(records []model.CostRecord, limit int) ([]model.ServiceCostSummary, error) {
	if limit <= 0 {
		return []model.ServiceCostSummary{}, nil
	}

	summaries, err := sumServices(records)
	if err != nil {
		return nil, err
	}

	if len(summaries) > limit {
		summaries = summaries[:limit]
	}
	return summaries, nil
}

// buildTagSummary groups tag-keyed records into per-value buckets plus the
// untagged accumulator, with percentages of the window total
func buildTagSummary(tagKey string, records []model.CostRecord) (*model.TagCostSummary, error) {
	summary := &model.TagCostSummary{
		TagKey:       tagKey,
		Values:       []model.TagValueCost{},
		UntaggedCost: decimal.Zero,
		TotalCost:    decimal.Zero,
	}

	valueCosts := make(map[string]decimal.Decimal)

	for _, record := range records {
		if summary.Unit == "" {
			summary.Unit = record.Unit
		} else if record.Unit != summary.Unit {
			return nil, &MixedCurrencyError{Unit: summary.Unit, OtherUnit: record.Unit}
		}

		value := normalizeTagValue(record.Key)
		if isUntagged(value) {
			summary.UntaggedCost = summary.UntaggedCost.Add(record.Amount)
		} else {
			valueCosts[value] = valueCosts[value].Add(record.Amount)
		}
		summary.TotalCost = summary.TotalCost.Add(record.Amount)
	}

	for value, cost := range valueCosts {
		summary.Values = append(summary.Values, model.TagValueCost{
			Value:      value,
			Cost:       cost,
			Percentage: percentageOf(cost, summary.TotalCost),
		})
	}
	summary.UntaggedPercentage = percentageOf(summary.UntaggedCost, summary.TotalCost)

	sort.Slice(summary.Values, func(i, j int) bool {
		if !summary.Values[i].Cost.Equal(summary.Values[j].Cost) {
			return summary.Values[i].Cost.GreaterThan(summary.Values[j].Cost)
		}
		return summary.Values[i].Value < summary.Values[j].Value
	})

	return summary, nil
}

// normalizeTagValue strips the provider's "key$value" prefix convention
// and a trailing "$", so the same logical value never fragments into
// multiple buckets
func normalizeTagValue(raw string) string {
	value := raw
	if i := strings.Index(value, "$"); i >= 0 {
		value = value[i+1:]
	}
	return strings.TrimSuffix(value, "$")
}

func isUntagged(value string) bool {
	return value == "" || strings.EqualFold(value, "no tag")
}

// monthlyTotals sums records per period, sorted chronologically
func monthlyTotals(records []model.CostRecord) ([]model.PeriodCost, error) {
	totals := make(map[string]decimal.Decimal)
	unit := ""

	for _, record := range records {
		if unit == "" {
			unit = record.Unit
		} else if record.Unit != unit {
			return nil, &MixedCurrencyError{Unit: unit, OtherUnit: record.Unit}
		}
		totals[record.PeriodStart] = totals[record.PeriodStart].Add(record.Amount)
	}

	periods := make([]model.PeriodCost, 0, len(totals))
	for period, amount := range totals {
		periods = append(periods, model.PeriodCost{Period: period, Amount: amount})
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Period < periods[j].Period
	})

	return periods, nil
}

// buildTrend computes period-over-period changes from chronologically
// ordered monthly totals
func buildTrend(totals []model.PeriodCost) *model.Trend {
	trend := &model.Trend{Points: []model.TrendPoint{}}

	for i := 1; i < len(totals); i++ {
		previous := totals[i-1].Amount
		current := totals[i].Amount
		change, newSpend := percentChange(previous, current)

		trend.Points = append(trend.Points, model.TrendPoint{
			Period:        totals[i].Period,
			Cost:          current,
			PreviousCost:  previous,
			PercentChange: change,
			NewSpend:      newSpend,
		})
	}

	if len(trend.Points) > 0 {
		trend.TotalChange, _ = percentChange(totals[0].Amount, totals[len(totals)-1].Amount)

		sum := 0.0
		for _, point := range trend.Points {
			sum += point.PercentChange
		}
		trend.AverageChange = sum / float64(len(trend.Points))
	}

	return trend
}

// percentChange returns the period-over-period change. When the previous
// cost is zero and the current is positive the ratio is undefined; the
// capped sentinel is returned and the second result is true.
func percentChange(previous, current decimal.Decimal) (float64, bool) {
	if previous.IsPositive() {
		change, _ := current.Sub(previous).Div(previous).Mul(hundred).Float64()
		return change, false
	}
	if current.IsPositive() {
		return newSpendSentinel, true
	}
	return 0, false
}

func percentageOf(part, total decimal.Decimal) float64 {
	if !total.IsPositive() {
		return 0
	}
	percentage, _ := part.Div(total).Mul(hundred).Float64()
	return percentage
}
