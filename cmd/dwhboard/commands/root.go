package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "dwhboard",
	Short: "E-Commerce DWH dashboard core",
	Long: `Report rendering and forecasting engine over the e-commerce
sales warehouse.

Commands:
  serve     start the API server for presentation shells
  reports   list the report catalog
  report    run one report, print or export its series
  forecast  fit and project the monthly revenue trend
  check-db  verify the warehouse is reachable

Examples:
  go run ./cmd/dwhboard serve
  go run ./cmd/dwhboard report "Monthly Revenue"
  go run ./cmd/dwhboard forecast --months 6 --degree 2`,
}

// Execute adds all child commands to the root command and runs it. Called
// by main.main().
func Execute() error {
	return rootCmd.Execute()
}
