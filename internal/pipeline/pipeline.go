package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/weather-data-analyzer/internal/domain"
	"github.com/couchcryptid/weather-data-analyzer/internal/observability"
)

// Extractor loads every record for the run.
type Extractor interface {
	Extract(ctx context.Context) ([]domain.WeatherRecord, error)
}

// Reporter renders the record table and the summary statistics.
type Reporter interface {
	Render(s domain.Store) error
	WriteSummary(sum domain.Summary) error
}

// Exporter publishes the loaded records to a downstream system.
type Exporter interface {
	Export(ctx context.Context, s domain.Store, sum domain.Summary) (int, error)
}

// Options selects which statistics the summary reports.
type Options struct {
	Month      int
	ThresholdF float64
}

// Pipeline runs one linear load, report, summarize, export pass.
type Pipeline struct {
	extractor Extractor
	reporter  Reporter
	exporter  Exporter
	logger    *slog.Logger
	metrics   *observability.Metrics
	opts      Options
}

// New creates a Pipeline. Pass a nil exporter to disable record export.
func New(e Extractor, r Reporter, x Exporter, logger *slog.Logger, metrics *observability.Metrics, opts Options) *Pipeline {
	return &Pipeline{
		extractor: e,
		reporter:  r,
		exporter:  x,
		logger:    logger,
		metrics:   metrics,
		opts:      opts,
	}
}

// Run loads the records, prints the report and summary, and exports the records
// when an exporter is configured. Any error ends the run; nothing is retried.
func (p *Pipeline) Run(ctx context.Context) (domain.Summary, error) {
	records, err := p.extractor.Extract(ctx)
	if err != nil {
		return domain.Summary{}, fmt.Errorf("load weather data: %w", err)
	}
	store := domain.NewStore(records)

	if err := p.reporter.Render(store); err != nil {
		return domain.Summary{}, fmt.Errorf("render report: %w", err)
	}

	sum := domain.Summarize(store, p.opts.Month, p.opts.ThresholdF)
	if err := p.reporter.WriteSummary(sum); err != nil {
		return sum, fmt.Errorf("write summary: %w", err)
	}
	p.metrics.LastRunTimestamp.Set(float64(sum.GeneratedAt.Unix()))

	p.logger.Info("report complete",
		"records", sum.Records,
		"unparsed_dates", sum.UnparsedDates,
		"month", sum.Month,
		"rainy_days", sum.RainyDays,
		"days_above", sum.DaysAbove,
	)

	if p.exporter == nil {
		return sum, nil
	}

	n, err := p.exporter.Export(ctx, store, sum)
	if err != nil {
		p.metrics.ExportErrors.Inc()
		return sum, fmt.Errorf("export weather records: %w", err)
	}
	p.metrics.RecordsExported.Add(float64(n))
	p.logger.Info("records exported", "count", n)

	return sum, nil
}
