package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/elC0mpa/aws-costpilot/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawTagTable displays the cost breakdown of one tag key by value
func DrawTagTable(accountID string, summary *model.TagCostSummary) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle(fmt.Sprintf("Costs by tag %q", summary.TagKey))
	tw.AppendHeader(table.Row{"Tag Value", "Cost", "Share", "Top Services"})
	tw.SetStyle(table.StyleRounded)

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	for _, value := range summary.Values {
		tw.AppendRow(table.Row{
			text.FgGreen.Sprint(value.Value),
			fmt.Sprintf("%s %s", value.Cost.StringFixed(2), summary.Unit),
			fmt.Sprintf("%.1f%%", value.Percentage),
			topServiceNames(value.Services, 3),
		})
	}

	if summary.UntaggedCost.IsPositive() {
		tw.AppendRow(table.Row{
			text.FgHiYellow.Sprint("(untagged)"),
			fmt.Sprintf("%s %s", summary.UntaggedCost.StringFixed(2), summary.Unit),
			fmt.Sprintf("%.1f%%", summary.UntaggedPercentage),
			"",
		})
	}

	tw.AppendSeparator()
	tw.AppendRow(table.Row{
		text.FgHiWhite.Sprint("TOTAL"),
		text.FgHiWhite.Sprintf("%s %s", summary.TotalCost.StringFixed(2), summary.Unit),
		"",
		"",
	})

	tw.Render()

	if accountID != "" {
		fmt.Printf(" Account ID: %s\n", text.FgBlue.Sprint(accountID))
	}
}

// DrawTagOverview displays one breakdown table per discovered tag key
func DrawTagOverview(accountID string, summaries []model.TagCostSummary) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 🏷  COST BY TAG"))
	fmt.Printf(" Account ID: %s\n", text.FgBlue.Sprint(accountID))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(summaries) == 0 {
		fmt.Println(text.FgHiYellow.Sprint(" No cost allocation tags found for this account"))
		return
	}

	for i := range summaries {
		DrawTagTable("", &summaries[i])
		fmt.Println()
	}
}

func topServiceNames(services []model.ServiceCostSummary, limit int) string {
	names := make([]string, 0, limit)
	for _, svc := range services {
		if len(names) == limit {
			break
		}
		names = append(names, svc.Service)
	}
	return strings.Join(names, ", ")
}
