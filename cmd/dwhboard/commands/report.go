package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MartnzGO/Adattarhaz/internal/catalog"
	"github.com/MartnzGO/Adattarhaz/internal/contracts"
	"github.com/MartnzGO/Adattarhaz/internal/export"
	"github.com/MartnzGO/Adattarhaz/internal/loader"
	"github.com/MartnzGO/Adattarhaz/pkg/config"
	"github.com/MartnzGO/Adattarhaz/pkg/logger"
	"github.com/MartnzGO/Adattarhaz/pkg/warehouse"
)

// reportCmd runs a single catalog report.
var reportCmd = &cobra.Command{
	Use:   "report <name>",
	Short: "Run one report and print or export its series",
	Long: `Run a catalog report against the warehouse.

Without --out the series is printed as a table; with --out it is written
as CSV.

Example:
  go run ./cmd/dwhboard report "Monthly Revenue"
  go run ./cmd/dwhboard report "Orders Count by State" --out states.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

var reportOut string

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportOut, "out", "", "write the series to this CSV file")
}

func runReport(cmd *cobra.Command, args []string) error {
	name := args[0]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	cat := catalog.New()
	report, err := cat.Lookup(name)
	if err != nil {
		if errors.Is(err, contracts.ErrReportNotFound) {
			return fmt.Errorf("report %q not found; run 'dwhboard reports' for the catalog", name)
		}
		return err
	}

	ldr := loader.New(warehouse.New(cfg.Warehouse), log)
	series, err := ldr.Load(context.Background(), report)
	if err != nil {
		return err
	}

	if len(series) == 0 {
		fmt.Printf("No data found for: %s\n", name)
		return nil
	}

	if reportOut != "" {
		if err := export.WriteSeriesFile(reportOut, report, series); err != nil {
			return err
		}
		fmt.Printf("Wrote %d rows to %s\n", len(series), reportOut)
		return nil
	}

	fmt.Printf("%s\n", report.Name)
	fmt.Printf("%-40s %15s\n", report.XLabel, report.YLabel)
	for _, p := range series {
		fmt.Printf("%-40s %15.2f\n", p.X, p.Y)
	}
	return nil
}

// reportsCmd lists the catalog.
var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List the report catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.New()
		fmt.Fprintf(os.Stdout, "%-32s %-17s %s\n", "NAME", "ARCHETYPE", "AXES")
		for _, r := range cat.Reports() {
			fmt.Fprintf(os.Stdout, "%-32s %-17s %s / %s\n", r.Name, r.Archetype, r.XLabel, r.YLabel)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}
