package model

// Dimension is a grouping axis supported by the billing queries. The set
// is a fixed whitelist; anything outside it is rejected at the client
// boundary instead of being forwarded to the provider.
type Dimension string

const (
	DimensionService         Dimension = "SERVICE"
	DimensionUsageType       Dimension = "USAGE_TYPE"
	DimensionRegion          Dimension = "REGION"
	DimensionLinkedAccount   Dimension = "LINKED_ACCOUNT"
	DimensionPurchaseType    Dimension = "PURCHASE_TYPE"
	DimensionOperatingSystem Dimension = "OPERATING_SYSTEM"
	DimensionInstanceType    Dimension = "INSTANCE_TYPE"
)

var supportedDimensions = map[Dimension]struct{}{
	DimensionService:         {},
	DimensionUsageType:       {},
	DimensionRegion:          {},
	DimensionLinkedAccount:   {},
	DimensionPurchaseType:    {},
	DimensionOperatingSystem: {},
	DimensionInstanceType:    {},
}

// Valid reports whether the dimension is part of the supported whitelist
func (d Dimension) Valid() bool {
	_, ok := supportedDimensions[d]
	return ok
}

// Granularity controls the period size of grouped cost results
type Granularity string

const (
	GranularityMonthly Granularity = "MONTHLY"
	GranularityDaily   Granularity = "DAILY"
)

// CostFilter restricts a grouped cost query to matching records. Either
// the dimension pair or the tag pair is set, not both.
type CostFilter struct {
	Dimension Dimension
	Values    []string

	TagKey    string
	TagValues []string
}
