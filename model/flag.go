package model

type Flags struct {
	// AWS connection
	Region  string
	Profile string

	// Query window
	StartDate string
	EndDate   string

	// Workflows
	Top            int
	Tag            string
	TagOverview    bool
	Trend          bool
	Months         int
	Resolve        string
	RefreshCatalog bool
}
