package utils

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-costpilot/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawAnomalyTable displays the months whose cost jump crossed the
// anomaly threshold
func DrawAnomalyTable(anomalies []model.Anomaly) {
	if len(anomalies) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Cost Anomalies")
	tw.AppendHeader(table.Row{"Month", "Previous", "Current", "Change", "Severity", "Top Contributors"})
	tw.SetStyle(table.StyleRounded)

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	for _, anomaly := range anomalies {
		severity := text.FgHiYellow.Sprint(anomaly.Severity)
		if anomaly.Severity == model.SeverityHigh {
			severity = text.FgHiRed.Sprint(anomaly.Severity)
		}

		tw.AppendRow(table.Row{
			anomaly.Period,
			anomaly.PreviousCost.StringFixed(2),
			anomaly.CurrentCost.StringFixed(2),
			text.FgHiRed.Sprintf("+%.1f%%", anomaly.PercentChange),
			severity,
			topServiceNames(anomaly.TopContributors, 3),
		})
	}

	tw.Render()
	fmt.Println()
}
