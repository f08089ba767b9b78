package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avgoustis/worklens/internal/timesheet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generate(t *testing.T, summaries []timesheet.EmployeeSummary) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.html")
	require.NoError(t, GenerateHTML(summaries, path, DefaultHTMLConfig()))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestGenerateHTMLStructure(t *testing.T) {
	doc := generate(t, []timesheet.EmployeeSummary{
		{Name: "Alice", TotalHours: 150},
	})

	assert.Contains(t, doc, "<!DOCTYPE html>")
	assert.Contains(t, doc, "<title>Employee Work Hours</title>")
	assert.Contains(t, doc, "ordered by total time worked, descending")
	assert.Contains(t, doc, "<th>Employee Name</th><th>Total Hours Worked</th>")
	assert.NotContains(t, doc, "<link", "document must be self-contained")
	assert.NotContains(t, doc, "src=", "document must be self-contained")
}

func TestGenerateHTMLRowOrderMatchesInput(t *testing.T) {
	doc := generate(t, []timesheet.EmployeeSummary{
		{Name: "Dave", TotalHours: 120},
		{Name: "Alice", TotalHours: 80},
		{Name: "Bob", TotalHours: 40},
	})

	dave := strings.Index(doc, "Dave")
	alice := strings.Index(doc, "Alice")
	bob := strings.Index(doc, "Bob")
	assert.True(t, dave < alice && alice < bob, "rows must keep the ranked order")
}

func TestGenerateHTMLLowHoursFlag(t *testing.T) {
	doc := generate(t, []timesheet.EmployeeSummary{
		{Name: "Alice", TotalHours: 150},
		{Name: "Bob", TotalHours: 99.99},
	})

	assert.Contains(t, doc, `<tr class="low-hours"><td>Bob</td><td>99.99</td></tr>`)
	assert.Contains(t, doc, `<tr><td>Alice</td><td>150.00</td></tr>`)
}

func TestGenerateHTMLTwoDecimalHours(t *testing.T) {
	doc := generate(t, []timesheet.EmployeeSummary{
		{Name: "Alice", TotalHours: 8.125},
	})

	assert.Contains(t, doc, "<td>8.13</td>")
}

func TestGenerateHTMLEscapesNames(t *testing.T) {
	doc := generate(t, []timesheet.EmployeeSummary{
		{Name: "Alice <script>", TotalHours: 10},
	})

	assert.Contains(t, doc, "Alice &lt;script&gt;")
	assert.NotContains(t, doc, "<script>")
}

func TestGenerateHTMLDeterministic(t *testing.T) {
	summaries := []timesheet.EmployeeSummary{
		{Name: "Alice", TotalHours: 150},
		{Name: "Bob", TotalHours: 50},
	}

	first := generate(t, summaries)
	second := generate(t, summaries)
	assert.Equal(t, first, second, "same input must give byte-identical output")
}
