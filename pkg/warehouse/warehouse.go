// Package warehouse provides read-only access to the star-schema sales
// warehouse. Connections are opened per call and closed on every exit path;
// there is no pooling because query frequency is low and every run must see
// the latest committed warehouse state.
package warehouse

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/MartnzGO/Adattarhaz/internal/contracts"
	"github.com/MartnzGO/Adattarhaz/pkg/config"
)

// Warehouse opens short-lived, strictly read-only connections to the store.
type Warehouse struct {
	cfg config.WarehouseConfig
}

// New creates a Warehouse for the configured store.
func New(cfg config.WarehouseConfig) *Warehouse {
	return &Warehouse{cfg: cfg}
}

// open connects and forces the session read-only so no query can mutate the
// store. Connection failures surface as contracts.ConnectionError.
func (w *Warehouse) open(ctx context.Context) (*pgx.Conn, error) {
	ctx, cancel := context.WithTimeout(ctx, w.cfg.ConnectTimeout)
	defer cancel()

	conn, err := pgx.Connect(ctx, w.cfg.URL)
	if err != nil {
		return nil, &contracts.ConnectionError{Err: err}
	}

	if _, err := conn.Exec(ctx, "SET default_transaction_read_only = on"); err != nil {
		_ = conn.Close(ctx)
		return nil, &contracts.ConnectionError{Err: err}
	}

	return conn, nil
}

// Query runs one aggregation and maps its rows to a series in row order.
// The query must return two columns aliased to x and y. A zero-row result
// is a valid empty series, not an error. Errors after a successful connect
// are returned unwrapped so the caller can attribute them to the report.
func (w *Warehouse) Query(ctx context.Context, query string) (contracts.Series, error) {
	conn, err := w.open(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Close(context.Background())

	rows, err := conn.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series contracts.Series
	for rows.Next() {
		var p contracts.Point
		if err := rows.Scan(&p.X, &p.Y); err != nil {
			return nil, err
		}
		series = append(series, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return series, nil
}

// Ping checks whether the store is reachable.
func (w *Warehouse) Ping(ctx context.Context) error {
	conn, err := w.open(ctx)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	return conn.Ping(ctx)
}
