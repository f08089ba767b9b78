// Package tools exposes report generation over MCP so agents can request
// time reports through standard tool calls.
package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/avgoustis/worklens/internal/pipeline"
	"github.com/avgoustis/worklens/internal/timesheet"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// DefaultTableFile and DefaultChartFile are the artifact names used when
// a tool call does not override the output directory.
const (
	DefaultTableFile = "employee_table.html"
	DefaultChartFile = "employee_pie_chart.png"
)

// Register registers all tools with the MCP server. The fetcher is the
// configured time-entry source shared by every tool call.
func Register(s *server.MCPServer, fetcher pipeline.Fetcher) {
	registerGenerateReportTool(s, fetcher)
	registerListHoursTool(s, fetcher)
}

func registerGenerateReportTool(s *server.MCPServer, fetcher pipeline.Fetcher) {
	tool := mcp.NewTool("generate_time_report",
		mcp.WithDescription("Fetches time-tracking entries, aggregates worked hours per employee, and generates two artifacts: a ranked HTML table and a pie-chart PNG showing each employee's share of total hours."),
		mcp.WithString("output_dir",
			mcp.Description("Directory to write employee_table.html and employee_pie_chart.png into. Defaults to the current directory."),
		),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		outputDir := "."
		if dir, ok := request.Params.Arguments["output_dir"].(string); ok && dir != "" {
			outputDir = dir
		}
		if _, err := os.Stat(outputDir); os.IsNotExist(err) {
			return newToolResultError(fmt.Sprintf("output directory does not exist: %s", outputDir)), nil
		}

		result, err := pipeline.Run(ctx, fetcher, pipeline.Options{
			TableFile: filepath.Join(outputDir, DefaultTableFile),
			ChartFile: filepath.Join(outputDir, DefaultChartFile),
		})
		if err != nil {
			return newToolResultError(fmt.Sprintf("failed to generate report: %v", err)), nil
		}
		if result.Empty() {
			return mcp.NewToolResultText("No active time entries found; nothing to report."), nil
		}

		return mcp.NewToolResultText(buildRunSummary(result)), nil
	})
}

func registerListHoursTool(s *server.MCPServer, fetcher pipeline.Fetcher) {
	tool := mcp.NewTool("list_employee_hours",
		mcp.WithDescription("Fetches time-tracking entries and returns the aggregated hours per employee, ranked by total time worked descending. Generates no files."),
	)

	s.AddTool(tool, func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := fetcher.FetchEntries(ctx)
		if err != nil {
			return newToolResultError(fmt.Sprintf("failed to fetch time entries: %v", err)), nil
		}

		summaries := timesheet.Summarize(entries)
		if len(summaries) == 0 {
			return mcp.NewToolResultText("No active time entries found."), nil
		}

		var sb strings.Builder
		sb.WriteString("Hours worked per employee:\n")
		for i, s := range summaries {
			sb.WriteString(fmt.Sprintf("  %d. %s: %.2fh\n", i+1, s.Name, s.TotalHours))
		}
		return mcp.NewToolResultText(sb.String()), nil
	})
}

func newToolResultError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: message,
			},
		},
		IsError: true,
	}
}

func buildRunSummary(result *pipeline.Result) string {
	var sb strings.Builder
	sb.WriteString("Time report generated successfully!\n\nArtifacts:\n")
	sb.WriteString(fmt.Sprintf("  - %s\n", result.TableFile))
	if result.ChartSkipped {
		sb.WriteString("  - pie chart skipped: total hours are zero\n")
	} else {
		sb.WriteString(fmt.Sprintf("  - %s\n", result.ChartFile))
	}

	sb.WriteString("\nEmployees:\n")
	for i, s := range result.Summaries {
		sb.WriteString(fmt.Sprintf("  %d. %s: %.2fh\n", i+1, s.Name, s.TotalHours))
	}
	return sb.String()
}
