package utils

import (
	"fmt"
	"sort"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/elC0mpa/aws-costpilot/model"
	"github.com/jedib0t/go-pretty/v6/text"
)

const (
	ColorRank1 = "#d73027"
	ColorRank2 = "#f46d43"
	ColorRank3 = "#fee08b"
	ColorRank4 = "#abdda4"
	ColorRank5 = "#66c2a5"
	ColorRank6 = "#1a9850"
)

var defaultStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("#F4D060"))

func DrawTrendChart(accountID string, trend *model.Trend) {
	fmt.Printf("\n%s\n", text.FgHiWhite.Sprint(" 📈  COSTPILOT TREND"))
	fmt.Printf(" Account ID: %s\n", text.FgBlue.Sprint(accountID))
	fmt.Println(text.FgHiBlue.Sprint(" ------------------------------------------------"))

	if len(trend.Points) == 0 {
		fmt.Println(text.FgHiYellow.Sprint(" Not enough billing history to draw a trend"))
		return
	}

	bc := barchart.New(130, 20)

	indexedColors := assignRankedColors(trend.Points)

	for idx, point := range trend.Points {
		cost, _ := point.Cost.Float64()
		data := barchart.BarData{
			Label: getBarLabel(point),
			Values: []barchart.BarValue{
				{
					Value: cost,
					Style: lipgloss.NewStyle().Foreground(lipgloss.Color(indexedColors[idx])),
				},
			},
		}

		bc.Push(data)
	}

	fmt.Println()
	fmt.Println()

	bc.Draw()
	s := lipgloss.JoinHorizontal(lipgloss.Top,
		defaultStyle.Render(bc.View()),
	)

	fmt.Println(s)

	changeColor := text.FgHiGreen
	if trend.TotalChange > 0 {
		changeColor = text.FgHiRed
	}
	fmt.Printf(" Total change: %s  Average change: %s\n",
		changeColor.Sprintf("%+.1f%%", trend.TotalChange),
		changeColor.Sprintf("%+.1f%%", trend.AverageChange))
}

func getBarLabel(point model.TrendPoint) string {
	cost, _ := point.Cost.Float64()

	parsedTime, err := time.Parse(model.DateFormat, point.Period)
	if err != nil {
		return fmt.Sprintf("%s: %.2f", point.Period, cost)
	}

	return fmt.Sprintf("%s: %.2f", parsedTime.Format("Jan"), cost)
}

func assignRankedColors(points []model.TrendPoint) []string {
	palette := []string{ColorRank1, ColorRank2, ColorRank3, ColorRank4, ColorRank5, ColorRank6}

	type costWithIndex struct {
		index int
		value float64
	}

	costsToSort := make([]costWithIndex, len(points))
	for i, point := range points {
		cost, _ := point.Cost.Float64()
		costsToSort[i] = costWithIndex{
			index: i,
			value: cost,
		}
	}

	sort.Slice(costsToSort, func(i, j int) bool {
		return costsToSort[i].value > costsToSort[j].value
	})

	resultColors := make([]string, len(points))
	for i := range resultColors {
		resultColors[i] = ColorRank6
	}
	for rank, sortedCost := range costsToSort {
		originalIndex := sortedCost.index
		if rank < len(palette) {
			resultColors[originalIndex] = palette[rank]
		}
	}

	return resultColors
}
