package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MartnzGO/Adattarhaz/internal/catalog"
	"github.com/MartnzGO/Adattarhaz/internal/contracts"
	"github.com/MartnzGO/Adattarhaz/internal/forecast"
	"github.com/MartnzGO/Adattarhaz/internal/loader"
	"github.com/MartnzGO/Adattarhaz/pkg/config"
	"github.com/MartnzGO/Adattarhaz/pkg/logger"
	"github.com/MartnzGO/Adattarhaz/pkg/warehouse"
)

// forecastCmd fits and projects the monthly revenue trend.
var forecastCmd = &cobra.Command{
	Use:   "forecast",
	Short: "Polynomial revenue forecast",
	Long: `Fit a polynomial trend to the monthly revenue series and project
it forward.

Bounds: --months 1..36, --degree 1..5. The series needs at least
degree+1 points.

Example:
  go run ./cmd/dwhboard forecast --months 6 --degree 2`,
	RunE: runForecast,
}

var (
	forecastMonths int
	forecastDegree int
)

func init() {
	rootCmd.AddCommand(forecastCmd)
	forecastCmd.Flags().IntVar(&forecastMonths, "months", 6, "months to project (1-36)")
	forecastCmd.Flags().IntVar(&forecastDegree, "degree", 2, "polynomial degree (1-5)")
}

func runForecast(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	cat := catalog.New()
	report, err := cat.Lookup(catalog.MonthlyRevenue)
	if err != nil {
		return err
	}

	ldr := loader.New(warehouse.New(cfg.Warehouse), log)
	historical, err := ldr.Load(context.Background(), report)
	if err != nil {
		return err
	}

	engine := forecast.NewEngine(log)
	result, err := engine.Forecast(historical, contracts.ForecastRequest{
		HorizonMonths: forecastMonths,
		Degree:        forecastDegree,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Polynomial Revenue Forecast (Deg=%d, %dmo)\n", result.Degree, forecastMonths)
	fmt.Printf("%-12s %15s %15s\n", "PERIOD", "REVENUE", "FITTED")
	for i, p := range result.Historical {
		fmt.Printf("%-12s %15.2f %15.2f\n", p.X, p.Y, result.Fitted[i].Y)
	}
	fmt.Printf("%-12s %15s %15s\n", "PERIOD", "", "PREDICTED")
	for _, p := range result.Predicted {
		fmt.Printf("%-12s %15s %15.2f\n", p.X, "", p.Y)
	}
	return nil
}
