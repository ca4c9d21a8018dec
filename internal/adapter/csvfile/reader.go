package csvfile

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/couchcryptid/weather-data-analyzer/internal/domain"
	"github.com/couchcryptid/weather-data-analyzer/internal/observability"
)

// MaxLineBytes bounds a single input line. bufio.Scanner defaults to 64 KiB.
const MaxLineBytes = 16 << 20

// Reader loads weather records from a comma-separated file.
// It implements pipeline.Extractor.
type Reader struct {
	path    string
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewReader creates a Reader for the file at path.
func NewReader(path string, logger *slog.Logger, metrics *observability.Metrics) *Reader {
	return &Reader{path: path, logger: logger, metrics: metrics}
}

// Extract reads every data line of the file. The file is closed before Extract returns.
func (r *Reader) Extract(ctx context.Context) ([]domain.WeatherRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	records, err := r.load()
	if err != nil {
		r.metrics.LoadErrors.Inc()
		return nil, err
	}
	r.metrics.LoadDuration.Observe(time.Since(start).Seconds())
	r.metrics.RecordsLoaded.Add(float64(len(records)))

	r.logger.Debug("weather data loaded", "path", r.path, "records", len(records))
	return records, nil
}

func (r *Reader) load() ([]domain.WeatherRecord, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open weather data: %w", err)
	}
	defer f.Close()

	records, err := Parse(f, r.onInvalidDate)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.path, err)
	}
	return records, nil
}

func (r *Reader) onInvalidDate(line int, date string) {
	r.metrics.DateFormatAnomalies.Inc()
	r.logger.Warn("invalid date format", "path", r.path, "line", line, "date", date)
}

// Parse reads records from src, skipping the first line unconditionally. For every
// kept record whose date matches neither accepted format, onInvalidDate is called
// with the 1-based line number. A nil onInvalidDate is allowed.
func Parse(src io.Reader, onInvalidDate func(line int, date string)) ([]domain.WeatherRecord, error) {
	var records []domain.WeatherRecord //nolint:prealloc // size depends on file contents

	scanner := bufio.NewScanner(src)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if lineNum == 1 {
			continue
		}

		rec, err := domain.ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if !rec.Month().Parsed() && onInvalidDate != nil {
			onInvalidDate(lineNum, rec.Date())
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read weather data: %w", err)
	}

	return records, nil
}
