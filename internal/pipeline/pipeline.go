// Package pipeline runs the full fetch -> aggregate -> render chain that
// both the CLI and the MCP tools expose.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/avgoustis/worklens/internal/chart"
	"github.com/avgoustis/worklens/internal/report"
	"github.com/avgoustis/worklens/internal/timesheet"
)

// Fetcher is the injected collaborator that retrieves raw time entries.
type Fetcher interface {
	FetchEntries(ctx context.Context) ([]timesheet.TimeEntry, error)
}

// Options names the output artifacts of a run.
type Options struct {
	TableFile string
	ChartFile string
}

// Result describes what a run produced.
type Result struct {
	Summaries    []timesheet.EmployeeSummary
	TableFile    string
	ChartFile    string
	ChartSkipped bool // true when the grand total was zero
}

// Empty reports whether the run found nothing to render. That is a normal
// outcome, not an error: the fetch succeeded but every entry was deleted
// or the dataset was empty, so no artifacts were written.
func (r *Result) Empty() bool {
	return len(r.Summaries) == 0
}

// Run executes one report generation pass. A fetch or render failure
// returns an error and leaves no partial artifacts; a zero grand total
// skips the chart but still writes the HTML table.
func Run(ctx context.Context, fetcher Fetcher, opts Options) (*Result, error) {
	entries, err := fetcher.FetchEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch failed: %w", err)
	}

	summaries := timesheet.Summarize(entries)
	result := &Result{Summaries: summaries}
	if result.Empty() {
		return result, nil
	}

	if err := report.GenerateHTML(summaries, opts.TableFile, report.DefaultHTMLConfig()); err != nil {
		return nil, err
	}
	result.TableFile = opts.TableFile

	if err := chart.Generate(summaries, opts.ChartFile); err != nil {
		if errors.Is(err, chart.ErrZeroTotal) {
			result.ChartSkipped = true
			return result, nil
		}
		return nil, err
	}
	result.ChartFile = opts.ChartFile

	return result, nil
}
