package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/couchcryptid/weather-data-analyzer/internal/config"
	"github.com/couchcryptid/weather-data-analyzer/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer publishes loaded weather records to a Kafka topic.
// It implements pipeline.Exporter.
type Writer struct {
	writer  messageWriter
	timeout time.Duration
	logger  *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, timeout: cfg.KafkaWriteTimeout, logger: logger}
}

// Export serializes every record in store order and publishes them in a single
// WriteMessages call. Each message carries the report generation time so
// consumers can group records from the same run.
func (w *Writer) Export(ctx context.Context, s domain.Store, sum domain.Summary) (int, error) {
	if s.Len() == 0 {
		return 0, nil
	}

	msgs := make([]kafkago.Message, 0, s.Len())
	for _, rec := range s.All() {
		msg, err := serializeToMessage(rec, sum.GeneratedAt)
		if err != nil {
			return 0, err
		}
		msgs = append(msgs, msg)
	}

	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return 0, fmt.Errorf("publish weather records: %w", err)
	}
	w.logger.Debug("weather records exported", "count", len(msgs))
	return len(msgs), nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a WeatherRecord into a Kafka message keyed by its raw date.
func serializeToMessage(rec domain.WeatherRecord, generatedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize weather record: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(rec.Date()),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "category", Value: []byte(rec.Category())},
			{Key: "month", Value: []byte(strconv.Itoa(rec.Month().Int()))},
			{Key: "generated_at", Value: []byte(generatedAt.UTC().Format(time.RFC3339))},
		},
	}, nil
}
