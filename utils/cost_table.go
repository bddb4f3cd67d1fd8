package utils

import (
	"fmt"

	"github.com/elC0mpa/aws-costpilot/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/shopspring/decimal"
)

func DrawCostTable(accountID string, window model.DateWindow, summaries []model.ServiceCostSummary) {
	costHeader := fmt.Sprintf("Cost\n(%s\n%s)", window.StartString(), window.EndString())

	tw := table.Table{}
	tw.AppendHeader(table.Row{
		"Account ID",
		"Service",
		costHeader,
		"Share",
	})

	total := decimal.Zero
	unit := "USD"
	for _, summary := range summaries {
		total = total.Add(summary.Amount)
		if summary.Unit != "" {
			unit = summary.Unit
		}
	}

	var rows []table.Row
	rows = append(rows, populateTotalRow(total, unit))
	for _, summary := range summaries {
		rows = append(rows, populateServiceRow(summary, total))
	}

	halfRow := len(rows) / 2
	rows[halfRow][0] = text.FgBlue.Sprintf("%s", accountID)
	tw.AppendRows(rows)
	tw.SetStyle(table.StyleRounded)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{
			Number:       1,
			VAlignHeader: text.VAlignMiddle,
		},
		{
			Number:       2,
			VAlignHeader: text.VAlignMiddle,
		},
		{
			Number: 3,
			Align:  text.AlignRight,
		},
		{
			Number:       4,
			Align:        text.AlignRight,
			VAlignHeader: text.VAlignMiddle,
		},
	})
	fmt.Println(tw.Render())

	if window.Adjusted {
		fmt.Println(text.FgHiYellow.Sprintf(" Date range adjusted to %s - %s", window.StartString(), window.EndString()))
	}
}

func populateTotalRow(total decimal.Decimal, unit string) table.Row {
	row := make(table.Row, 4)
	row[0] = ""
	row[1] = text.FgHiGreen.Sprint("Total Costs")
	row[2] = text.FgHiGreen.Sprintf("%s %s", total.StringFixed(2), unit)
	row[3] = ""
	return row
}

func populateServiceRow(summary model.ServiceCostSummary, total decimal.Decimal) table.Row {
	row := make(table.Row, 4)

	share := 0.0
	if total.IsPositive() {
		share, _ = summary.Amount.Div(total).Mul(decimal.NewFromInt(100)).Float64()
	}

	serviceColor := text.FgGreen
	if share > 50 {
		serviceColor = text.FgRed
	} else if share > 20 {
		serviceColor = text.FgYellow
	}

	row[0] = ""
	row[1] = serviceColor.Sprintf("%s", summary.Service)
	row[2] = serviceColor.Sprintf("%s %s", summary.Amount.StringFixed(2), summary.Unit)
	row[3] = serviceColor.Sprintf("%.1f%%", share)

	return row
}
