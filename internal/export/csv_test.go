package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MartnzGO/Adattarhaz/internal/contracts"
)

func TestWriteSeries(t *testing.T) {
	report := contracts.Report{
		Name:   "Monthly Revenue",
		XLabel: "Month (YYYY-MM)",
		YLabel: "Revenue",
	}
	series := contracts.Series{
		{X: "2023-01", Y: 100},
		{X: "2023-02", Y: 120.5},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, report, series))

	assert.Equal(t, "Month (YYYY-MM),Revenue\n2023-01,100\n2023-02,120.5\n", buf.String())
}

func TestWriteSeries_EmptyKeepsHeader(t *testing.T) {
	report := contracts.Report{Name: "r", XLabel: "State", YLabel: "Order Count"}

	var buf bytes.Buffer
	require.NoError(t, WriteSeries(&buf, report, nil))
	assert.Equal(t, "State,Order Count\n", buf.String())
}

func TestWriteSeriesFile_CreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots", "out.csv")
	report := contracts.Report{Name: "r", XLabel: "x", YLabel: "y"}

	require.NoError(t, WriteSeriesFile(path, report, contracts.Series{{X: "a", Y: 1}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x,y\na,1\n", string(data))
}

func TestSnapshotFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Monthly Revenue", "Monthly_Revenue.csv"},
		{"Top 10 Categories by Revenue", "Top_10_Categories_by_Revenue.csv"},
		{"weird/..name!", "weirdname.csv"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SnapshotFilename(tt.name))
	}
}
