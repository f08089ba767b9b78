// Package report formats ranked employee summaries as a self-contained
// HTML document and as a console table.
package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/avgoustis/worklens/internal/artifact"
	"github.com/avgoustis/worklens/internal/timesheet"
)

// Rows under this many total hours are visually flagged in the table.
// The threshold is fixed, not configurable.
const lowHoursThreshold = 100.0

// HTMLConfig configures the generated report document.
type HTMLConfig struct {
	Title   string
	Caption string
}

// DefaultHTMLConfig returns the standard report configuration.
func DefaultHTMLConfig() HTMLConfig {
	return HTMLConfig{
		Title:   "Employee Work Hours",
		Caption: "ordered by total time worked, descending",
	}
}

// HTMLBuilder builds the report document from ranked summaries.
// It performs no aggregation or re-sorting; row order is the input order.
type HTMLBuilder struct {
	summaries []timesheet.EmployeeSummary
	config    HTMLConfig
}

// GenerateHTML renders the ranked summaries as a self-contained HTML
// document and writes it to outputPath.
func GenerateHTML(summaries []timesheet.EmployeeSummary, outputPath string, config HTMLConfig) error {
	builder := &HTMLBuilder{
		summaries: summaries,
		config:    config,
	}

	doc := builder.render()

	if err := artifact.WriteFile(outputPath, []byte(doc)); err != nil {
		return fmt.Errorf("failed to write HTML report: %w", err)
	}

	return nil
}

func (b *HTMLBuilder) render() string {
	var sb strings.Builder

	sb.WriteString(b.renderHead())
	sb.WriteString("<body>\n")
	sb.WriteString(b.renderHeader())
	sb.WriteString(b.renderTable())
	sb.WriteString("</body>\n</html>\n")

	return sb.String()
}

func (b *HTMLBuilder) renderHead() string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>%s</title>
    <style>%s</style>
</head>
`, html.EscapeString(b.config.Title), reportCSS)
}

func (b *HTMLBuilder) renderHeader() string {
	return fmt.Sprintf(`<h1>%s</h1>
<p class="caption">%s</p>
`, html.EscapeString(b.config.Title), html.EscapeString(b.config.Caption))
}

func (b *HTMLBuilder) renderTable() string {
	var rows strings.Builder
	for _, s := range b.summaries {
		class := ""
		if s.TotalHours < lowHoursThreshold {
			class = ` class="low-hours"`
		}
		rows.WriteString(fmt.Sprintf("        <tr%s><td>%s</td><td>%.2f</td></tr>\n",
			class, html.EscapeString(s.Name), s.TotalHours))
	}

	return fmt.Sprintf(`<table>
    <thead>
        <tr><th>Employee Name</th><th>Total Hours Worked</th></tr>
    </thead>
    <tbody>
%s    </tbody>
</table>
`, rows.String())
}

const reportCSS = `
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; margin: 40px; color: #333; }
h1 { margin-bottom: 4px; }
.caption { color: #666; margin-top: 0; }
table { border-collapse: collapse; min-width: 420px; }
th, td { padding: 8px 14px; text-align: left; border: 1px solid #ccc; }
th { background: #f0f0f0; }
td:last-child { text-align: right; }
tr.low-hours { background: #ffd6d6; }
`
