package commands

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/MartnzGO/Adattarhaz/pkg/config"
	"github.com/MartnzGO/Adattarhaz/pkg/warehouse"
)

// checkDBCmd verifies the warehouse is reachable.
var checkDBCmd = &cobra.Command{
	Use:   "check-db",
	Short: "Verify the warehouse is reachable",
	Long: `Open a read-only connection to the warehouse and ping it.

An unreachable warehouse is reported but is not fatal for the other
commands; they degrade per run.

Example:
  go run ./cmd/dwhboard check-db`,
	RunE: runCheckDB,
}

func init() {
	rootCmd.AddCommand(checkDBCmd)
}

func runCheckDB(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	fmt.Printf("Warehouse: %s\n", maskPassword(cfg.Warehouse.URL))

	store := warehouse.New(cfg.Warehouse)
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Warehouse.ConnectTimeout)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("warehouse unreachable: %w", err)
	}

	fmt.Println("Warehouse connection OK (read-only)")
	return nil
}

// maskPassword hides credentials in a connection URL for display.
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if _, has := u.User.Password(); has {
		u.User = url.UserPassword(u.User.Username(), "****")
	}
	return u.String()
}
