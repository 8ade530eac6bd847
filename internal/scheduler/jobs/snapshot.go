package jobs

import (
	"context"
	"path/filepath"

	"github.com/MartnzGO/Adattarhaz/internal/catalog"
	"github.com/MartnzGO/Adattarhaz/internal/export"
	"github.com/MartnzGO/Adattarhaz/internal/loader"
	"github.com/MartnzGO/Adattarhaz/pkg/config"
	"github.com/MartnzGO/Adattarhaz/pkg/logger"
)

// SnapshotJob exports every catalog report to CSV on a schedule. A report
// that fails to load is logged and skipped so one broken aggregation cannot
// block the others.
type SnapshotJob struct {
	catalog *catalog.Catalog
	loader  *loader.Loader
	cfg     config.SnapshotConfig
	logger  *logger.Logger
}

// NewSnapshotJob creates a SnapshotJob.
func NewSnapshotJob(cat *catalog.Catalog, ldr *loader.Loader, cfg config.SnapshotConfig, log *logger.Logger) *SnapshotJob {
	return &SnapshotJob{
		catalog: cat,
		loader:  ldr,
		cfg:     cfg,
		logger:  log.Component("snapshot"),
	}
}

// Name returns the job name.
func (j *SnapshotJob) Name() string {
	return "report_snapshot"
}

// Schedule returns the configured cron expression.
func (j *SnapshotJob) Schedule() string {
	return j.cfg.Schedule
}

// Run loads and exports each catalog report in display order.
func (j *SnapshotJob) Run(ctx context.Context) error {
	for _, report := range j.catalog.Reports() {
		series, err := j.loader.Load(ctx, report)
		if err != nil {
			j.logger.WithError(err).WithField("report", report.Name).Warn("snapshot skipped")
			continue
		}

		path := filepath.Join(j.cfg.Dir, export.SnapshotFilename(report.Name))
		if err := export.WriteSeriesFile(path, report, series); err != nil {
			j.logger.WithError(err).WithField("report", report.Name).Warn("snapshot write failed")
			continue
		}

		j.logger.WithFields(map[string]interface{}{
			"report": report.Name,
			"rows":   len(series),
			"path":   path,
		}).Info("snapshot written")
	}
	return nil
}
