package cli

import (
	"fmt"
	"os"

	"github.com/avgoustis/worklens/internal/pipeline"
	"github.com/avgoustis/worklens/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// reportCmd is the explicit form of the default invocation.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Fetch time entries and generate the HTML table and pie chart",
	RunE:  runReport,
}

func runReport(cmd *cobra.Command, _ []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	result, err := pipeline.Run(cmd.Context(), client, pipeline.Options{
		TableFile: viper.GetString("table-file"),
		ChartFile: viper.GetString("chart-file"),
	})
	if err != nil {
		return err
	}

	if result.Empty() {
		warnf("no active time entries found; nothing to render")
		return nil
	}

	if err := report.PrintSummaries(os.Stdout, result.Summaries); err != nil {
		return fmt.Errorf("failed to print summary table: %w", err)
	}

	fmt.Printf("Generated %s\n", result.TableFile)
	if result.ChartSkipped {
		warnf("pie chart skipped: total hours across all employees is zero")
	} else {
		fmt.Printf("Generated %s\n", result.ChartFile)
	}

	return nil
}
