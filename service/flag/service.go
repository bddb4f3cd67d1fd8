package flag

import (
	"flag"

	"github.com/elC0mpa/aws-costpilot/model"
)

func NewService() *service {
	return &service{}
}

func (s *service) GetParsedFlags() (model.Flags, error) {
	region := flag.String("region", "us-east-1", "AWS region")
	profile := flag.String("profile", "", "AWS profile configuration")
	startDate := flag.String("start", "", "Start date (YYYY-MM-DD, default 30 days ago)")
	endDate := flag.String("end", "", "End date (YYYY-MM-DD, default today)")
	top := flag.Int("top", 5, "Number of services in the cost ranking")
	tag := flag.String("tag", "", "Break costs down by the values of this tag key")
	tagOverview := flag.Bool("tags", false, "Display a cost breakdown for every tag key")
	trend := flag.Bool("trend", false, "Display a month-over-month trend report")
	months := flag.Int("months", 6, "Number of months for the trend report")
	resolve := flag.String("resolve", "", "Resolve an informal service name to its canonical name")
	refreshCatalog := flag.Bool("refresh-catalog", false, "Invalidate the cached service catalog before running")

	flag.Parse()

	return model.Flags{
		Region:         *region,
		Profile:        *profile,
		StartDate:      *startDate,
		EndDate:        *endDate,
		Top:            *top,
		Tag:            *tag,
		TagOverview:    *tagOverview,
		Trend:          *trend,
		Months:         *months,
		Resolve:        *resolve,
		RefreshCatalog: *refreshCatalog,
	}, nil
}
