// Package export writes report series to CSV. It is the core-owned data
// counterpart of the shell's image export: deterministic, resolution-free,
// reproducible from the same series.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MartnzGO/Adattarhaz/internal/contracts"
)

// WriteSeries writes one series as CSV with the report's axis labels as the
// header row, rows in series order.
func WriteSeries(w io.Writer, report contracts.Report, series contracts.Series) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{report.XLabel, report.YLabel}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, p := range series {
		if err := cw.Write([]string{p.X, strconv.FormatFloat(p.Y, 'f', -1, 64)}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSeriesFile writes the series to path, creating parent directories as
// needed.
func WriteSeriesFile(path string, report contracts.Report, series contracts.Series) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	return WriteSeries(f, report, series)
}

// SnapshotFilename maps a report name to a stable file name.
func SnapshotFilename(reportName string) string {
	name := make([]rune, 0, len(reportName))
	for _, r := range reportName {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			name = append(name, r)
		case r == ' ', r == '-', r == '_':
			name = append(name, '_')
		}
	}
	return string(name) + ".csv"
}
