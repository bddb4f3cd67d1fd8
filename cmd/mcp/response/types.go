package response

// AccountInfo represents cloud account identity
type AccountInfo struct {
	Provider    string `json:"provider"`
	AccountID   string `json:"account_id"`
	AccountName string `json:"account_name"`
}

// PeriodCost represents cost attributed to one billing period
type PeriodCost struct {
	Period string  `json:"period"`
	Amount float64 `json:"amount"`
}

// ServiceCost represents the summed cost of a single service
type ServiceCost struct {
	Name    string       `json:"name"`
	Amount  float64      `json:"amount"`
	Unit    string       `json:"unit"`
	Periods []PeriodCost `json:"periods,omitempty"`
}

// CostReport represents a ranked cost breakdown for a date range
type CostReport struct {
	StartDate string        `json:"start_date"`
	EndDate   string        `json:"end_date"`
	Adjusted  bool          `json:"date_range_adjusted,omitempty"`
	Services  []ServiceCost `json:"services"`
	Total     float64       `json:"total"`
	Currency  string        `json:"currency"`
}

// TagValueCost represents cost attributed to one value of a tag key
type TagValueCost struct {
	Value      string        `json:"tag_value"`
	Cost       float64       `json:"cost"`
	Percentage float64       `json:"percentage"`
	Services   []ServiceCost `json:"services,omitempty"`
}

// TagBreakdown represents a cost breakdown by the values of one tag key
type TagBreakdown struct {
	TagKey             string         `json:"tag_key"`
	Values             []TagValueCost `json:"tag_values"`
	UntaggedCost       float64        `json:"untagged_cost"`
	UntaggedPercentage float64        `json:"untagged_percentage"`
	Total              float64        `json:"total"`
	Currency           string         `json:"currency"`
}

// TrendPoint represents one month compared against the previous one
type TrendPoint struct {
	Period        string  `json:"period"`
	Cost          float64 `json:"cost"`
	PreviousCost  float64 `json:"previous_cost"`
	PercentChange float64 `json:"percent_change"`
	NewSpend      bool    `json:"new_spend,omitempty"`
}

// CostTrend represents month-over-month cost movement with summary stats
type CostTrend struct {
	Points        []TrendPoint `json:"months"`
	TotalChange   float64      `json:"total_change"`
	AverageChange float64      `json:"average_change"`
}

// Anomaly represents a month whose cost jump crossed the threshold
type Anomaly struct {
	Period          string        `json:"period"`
	PercentChange   float64       `json:"percent_change"`
	PreviousCost    float64       `json:"previous_cost"`
	CurrentCost     float64       `json:"current_cost"`
	Severity        string        `json:"severity"`
	TopContributors []ServiceCost `json:"top_contributors,omitempty"`
}

// Forecast represents a predicted cost for an upcoming period
type Forecast struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	MeanValue float64 `json:"mean_value"`
	Currency  string  `json:"currency"`
}

// Resolution represents the outcome of a service name lookup
type Resolution struct {
	Input        string   `json:"original_input"`
	ResolvedName string   `json:"resolved_name"`
	Confidence   float64  `json:"confidence"`
	AutoApply    bool     `json:"auto_apply"`
	Alternatives []string `json:"suggestions,omitempty"`
	Method       string   `json:"resolution_method"`
}

// Suggestion represents one partial-name match with its relevance score
type Suggestion struct {
	Service string  `json:"service_name"`
	Score   float64 `json:"relevance_score"`
}

// Catalog represents the known billing service names
type Catalog struct {
	Count    int      `json:"count"`
	Services []string `json:"services"`
}
