package utils

import (
	"fmt"
	"os"

	"github.com/elC0mpa/aws-costpilot/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// DrawResolutionTable displays the outcome of a service name lookup
func DrawResolutionTable(result *model.ResolutionResult) {
	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetTitle("Service Name Resolution")
	tw.AppendHeader(table.Row{"Input", "Resolved Name", "Confidence", "Method"})
	tw.SetStyle(table.StyleRounded)

	resolvedColor := text.FgHiGreen
	if result.Method == model.ResolutionNone {
		resolvedColor = text.FgHiRed
	} else if result.Method == model.ResolutionFuzzy {
		resolvedColor = text.FgHiYellow
	}

	tw.AppendRow(table.Row{
		result.Input,
		resolvedColor.Sprint(result.ResolvedName),
		fmt.Sprintf("%.2f", result.Confidence),
		result.Method,
	})

	tw.Render()

	if len(result.Alternatives) > 0 {
		fmt.Println(text.FgHiWhite.Sprint(" Did you mean:"))
		for _, alternative := range result.Alternatives {
			fmt.Printf("   - %s\n", text.FgCyan.Sprint(alternative))
		}
	}
}
