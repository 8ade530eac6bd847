// Package loader executes catalog entries against the warehouse and turns
// their rows into validated series.
package loader

import (
	"context"
	"errors"

	"github.com/MartnzGO/Adattarhaz/internal/contracts"
	"github.com/MartnzGO/Adattarhaz/pkg/logger"
)

// Store runs one aggregation query and returns its rows as a series in row
// order. Implementations must keep the store read-only.
type Store interface {
	Query(ctx context.Context, query string) (contracts.Series, error)
}

// Loader loads report series from a Store.
type Loader struct {
	store Store
	log   *logger.Logger
}

// New creates a Loader.
func New(store Store, log *logger.Logger) *Loader {
	return &Loader{store: store, log: log.Component("loader")}
}

// Load executes the report's query and returns its series. Outcomes:
//
//   - zero rows: empty series, nil error (a valid result, not a failure)
//   - store unreachable: contracts.ConnectionError
//   - query failed after connecting: contracts.QueryError naming the report
func (l *Loader) Load(ctx context.Context, report contracts.Report) (contracts.Series, error) {
	series, err := l.store.Query(ctx, report.Query)
	if err != nil {
		var connErr *contracts.ConnectionError
		if errors.As(err, &connErr) {
			l.log.WithError(err).WithField("report", report.Name).Error("warehouse unreachable")
			return nil, err
		}
		l.log.WithError(err).WithField("report", report.Name).Error("query failed")
		return nil, &contracts.QueryError{Report: report.Name, Err: err}
	}

	l.log.WithFields(map[string]interface{}{
		"report": report.Name,
		"rows":   len(series),
	}).Debug("series loaded")

	return series, nil
}
