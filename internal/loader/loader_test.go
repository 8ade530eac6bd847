package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MartnzGO/Adattarhaz/internal/contracts"
	"github.com/MartnzGO/Adattarhaz/pkg/config"
	"github.com/MartnzGO/Adattarhaz/pkg/logger"
)

// memoryStore returns canned series keyed by query text.
type memoryStore struct {
	series map[string]contracts.Series
	err    error
}

func (m *memoryStore) Query(ctx context.Context, query string) (contracts.Series, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.series[query], nil
}

func testLogger() *logger.Logger {
	return logger.New(&config.Config{Env: "development", LogLevel: "error", LogFormat: "json"})
}

func TestLoader_Load_PreservesRowOrder(t *testing.T) {
	report := contracts.Report{Name: "Monthly Revenue", Query: "q"}
	store := &memoryStore{series: map[string]contracts.Series{
		"q": {{X: "2023-01", Y: 100}, {X: "2023-02", Y: 120}, {X: "2023-03", Y: 90}},
	}}

	series, err := New(store, testLogger()).Load(context.Background(), report)
	require.NoError(t, err)
	assert.Equal(t, []string{"2023-01", "2023-02", "2023-03"}, series.Labels())
	assert.Equal(t, []float64{100, 120, 90}, series.Values())
}

// Zero rows is a valid empty result, not a query error.
func TestLoader_Load_EmptyResult(t *testing.T) {
	report := contracts.Report{Name: "Monthly Revenue", Query: "q"}
	store := &memoryStore{series: map[string]contracts.Series{}}

	series, err := New(store, testLogger()).Load(context.Background(), report)
	require.NoError(t, err)
	assert.Empty(t, series)
	assert.Equal(t, contracts.OutcomeOK, contracts.Classify(err))
}

func TestLoader_Load_ConnectionErrorPassesThrough(t *testing.T) {
	store := &memoryStore{err: &contracts.ConnectionError{Err: errors.New("dial refused")}}

	_, err := New(store, testLogger()).Load(context.Background(), contracts.Report{Name: "r", Query: "q"})
	require.Error(t, err)
	assert.Equal(t, contracts.OutcomeConnectionError, contracts.Classify(err))
}

func TestLoader_Load_QueryErrorNamesReport(t *testing.T) {
	store := &memoryStore{err: errors.New(`column "y" does not exist`)}

	_, err := New(store, testLogger()).Load(context.Background(), contracts.Report{Name: "Orders Count by State", Query: "q"})
	require.Error(t, err)
	assert.Equal(t, contracts.OutcomeQueryError, contracts.Classify(err))

	var queryErr *contracts.QueryError
	require.ErrorAs(t, err, &queryErr)
	assert.Equal(t, "Orders Count by State", queryErr.Report)
}
