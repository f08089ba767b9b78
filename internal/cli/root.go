// Package cli wires the worklens commands, configuration and output.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/avgoustis/worklens/internal/timesheet"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Set by goreleaser at build time.
var version = "dev"

// Default artifact names; each run overwrites the previous outputs.
const (
	defaultTableFile = "employee_table.html"
	defaultChartFile = "employee_pie_chart.png"
)

var errNoAPIURL = errors.New("api-url is not configured (set the flag, WORKLENS_API_URL, or .worklens.yaml)")

// rootCmd is the command-line entrypoint. A bare invocation runs the full
// report pipeline so the tool works with no arguments.
var rootCmd = &cobra.Command{
	Use:           "worklens",
	Short:         "Generate employee time reports from remote time-tracking data.",
	Long:          `Worklens fetches raw time-tracking entries, aggregates worked hours per employee, and renders a ranked HTML table plus a pie-chart PNG of each employee's share.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runReport,
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .worklens.yaml in . or $HOME)")
	flags.String("api-url", "", "time entry endpoint URL")
	flags.String("api-token", "", "static access token for the endpoint")
	flags.String("table-file", defaultTableFile, "output path for the HTML report")
	flags.String("chart-file", defaultChartFile, "output path for the pie chart PNG")
	flags.Duration("timeout", 30*time.Second, "fetch timeout")

	_ = viper.BindPFlags(flags)

	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(mcpCmd)
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".worklens")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	viper.SetEnvPrefix("WORKLENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			warnf("error reading config file: %v", err)
		}
		// Not finding a config file is fine; defaults, env and flags apply.
	}
}

// newClient builds the fetch collaborator from the resolved configuration.
func newClient() (*timesheet.Client, error) {
	apiURL := viper.GetString("api-url")
	if apiURL == "" {
		return nil, errNoAPIURL
	}
	return timesheet.NewClient(
		apiURL,
		viper.GetString("api-token"),
		timesheet.WithTimeout(viper.GetDuration("timeout")),
	), nil
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "⚠️  "+format+"\n", args...)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
