// Command analyzer loads a weather observation CSV, prints a per-day report
// table followed by summary statistics, and optionally publishes the records
// to Kafka. All settings come from the environment; see internal/config.
package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/weather-data-analyzer/internal/adapter/csvfile"
	kafkaadapter "github.com/couchcryptid/weather-data-analyzer/internal/adapter/kafka"
	"github.com/couchcryptid/weather-data-analyzer/internal/config"
	"github.com/couchcryptid/weather-data-analyzer/internal/observability"
	"github.com/couchcryptid/weather-data-analyzer/internal/pipeline"
	"github.com/couchcryptid/weather-data-analyzer/internal/report"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics := observability.NewMetrics()

	if err := run(ctx, cfg, logger, metrics, prometheus.DefaultGatherer, os.Stdout); err != nil {
		logger.Error("weather analysis failed", "error", err)
		stop()
		os.Exit(1) //nolint:gocritic // stop already called
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics, gatherer prometheus.Gatherer, stdout io.Writer) error {
	var exporter pipeline.Exporter
	if cfg.KafkaEnabled {
		writer := kafkaadapter.NewWriter(cfg, logger)
		defer func() {
			if err := writer.Close(); err != nil {
				logger.Error("kafka writer close error", "error", err)
			}
		}()
		exporter = writer
		logger.Info("kafka record export enabled", "topic", cfg.KafkaSinkTopic, "brokers", cfg.KafkaBrokers)
	}

	reader := csvfile.NewReader(cfg.DataPath, logger, metrics)
	p := pipeline.New(reader, report.NewWriter(stdout), exporter, logger, metrics, pipeline.Options{
		Month:      cfg.ReportMonth,
		ThresholdF: cfg.ReportThreshold,
	})

	_, runErr := p.Run(ctx)

	if cfg.MetricsTextfile != "" {
		if err := observability.WriteTextfile(cfg.MetricsTextfile, gatherer); err != nil {
			logger.Error("metrics textfile error", "error", err, "path", cfg.MetricsTextfile)
		}
	}

	return runErr
}
