package report

import (
	"fmt"
	"io"

	"github.com/avgoustis/worklens/internal/timesheet"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

const (
	lowLabel = "Low"
	okLabel  = "OK"
)

var (
	lowColor = color.New(color.FgRed, color.Bold)
	okColor  = color.New(color.FgGreen)
)

// PrintSummaries writes the ranked summaries to w as a human-readable
// table, mirroring the 100-hour flag used by the HTML report.
func PrintSummaries(w io.Writer, summaries []timesheet.EmployeeSummary) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Employee", "Hours", "Label"})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, s := range summaries {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			s.Name,
			fmt.Sprintf("%.2f", s.TotalHours),
			hoursLabel(s.TotalHours),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// hoursLabel returns the colored console label for a total.
func hoursLabel(hours float64) string {
	if hours < lowHoursThreshold {
		return lowColor.Sprint(lowLabel)
	}
	return okColor.Sprint(okLabel)
}
