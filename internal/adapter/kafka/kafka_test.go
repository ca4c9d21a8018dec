package kafka

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/couchcryptid/weather-data-analyzer/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs     []kafkago.Message
	err      error
	deadline bool
	closed   bool
}

func (f *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	_, f.deadline = ctx.Deadline()
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func newTestWriter(fw *fakeWriter, timeout time.Duration) *Writer {
	return &Writer{writer: fw, timeout: timeout, logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestSerializeToMessage(t *testing.T) {
	generated := time.Date(2024, 9, 1, 6, 0, 0, 0, time.UTC)
	rec := domain.NewWeatherRecord("2024-08-02", 25, 60, 5)

	msg, err := serializeToMessage(rec, generated)
	require.NoError(t, err)

	assert.Equal(t, []byte("2024-08-02"), msg.Key)
	assert.Contains(t, string(msg.Value), `"temperature_f":77`)
	assert.Contains(t, string(msg.Value), `"category":"Warm"`)
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "category", msg.Headers[0].Key)
	assert.Equal(t, []byte("Warm"), msg.Headers[0].Value)
	assert.Equal(t, "month", msg.Headers[1].Key)
	assert.Equal(t, []byte("8"), msg.Headers[1].Value)
	assert.Equal(t, "generated_at", msg.Headers[2].Key)
	assert.Equal(t, []byte("2024-09-01T06:00:00Z"), msg.Headers[2].Value)
}

func TestSerializeToMessage_UnparsedMonth(t *testing.T) {
	msg, err := serializeToMessage(domain.NewWeatherRecord("someday", 10, 50, 0), time.Time{})
	require.NoError(t, err)

	assert.Equal(t, []byte("-1"), msg.Headers[1].Value)
	assert.Contains(t, string(msg.Value), `"month":null`)
}

func TestSerializeToMessage_NonFiniteReadings(t *testing.T) {
	rec := domain.NewWeatherRecord("2024-08-01", math.NaN(), math.Inf(1), 0)

	msg, err := serializeToMessage(rec, time.Time{})
	require.NoError(t, err)

	assert.Contains(t, string(msg.Value), `"temperature_c":null`)
	assert.Contains(t, string(msg.Value), `"temperature_f":null`)
	assert.Contains(t, string(msg.Value), `"humidity":null`)
	assert.Contains(t, string(msg.Value), `"precipitation":0`)
	assert.Equal(t, []byte("Cold"), msg.Headers[0].Value)
}

func TestWriter_Export_NonFiniteReadingDoesNotFailBatch(t *testing.T) {
	fw := &fakeWriter{}
	store := domain.NewStore([]domain.WeatherRecord{
		domain.NewWeatherRecord("2024-08-01", 20, 50, 0),
		domain.NewWeatherRecord("2024-08-02", math.Inf(-1), 50, math.NaN()),
	})

	n, err := newTestWriter(fw, 0).Export(context.Background(), store, domain.Summary{})
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	require.Len(t, fw.msgs, 2)
}

func TestWriter_Export(t *testing.T) {
	fw := &fakeWriter{}
	w := newTestWriter(fw, 5*time.Second)
	store := domain.NewStore([]domain.WeatherRecord{
		domain.NewWeatherRecord("2024-08-01", 20, 50, 0),
		domain.NewWeatherRecord("2024-08-02", 25, 60, 5),
	})

	n, err := w.Export(context.Background(), store, domain.Summary{GeneratedAt: time.Now()})
	require.NoError(t, err)

	assert.Equal(t, 2, n)
	require.Len(t, fw.msgs, 2)
	assert.Equal(t, []byte("2024-08-01"), fw.msgs[0].Key)
	assert.Equal(t, []byte("2024-08-02"), fw.msgs[1].Key)
	assert.True(t, fw.deadline, "write should be bounded by the configured timeout")
}

func TestWriter_Export_EmptyStore(t *testing.T) {
	fw := &fakeWriter{}
	n, err := newTestWriter(fw, 0).Export(context.Background(), domain.Store{}, domain.Summary{})

	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Empty(t, fw.msgs)
}

func TestWriter_Export_Error(t *testing.T) {
	fw := &fakeWriter{err: errors.New("broker unavailable")}
	store := domain.NewStore([]domain.WeatherRecord{domain.NewWeatherRecord("2024-08-01", 20, 50, 0)})

	_, err := newTestWriter(fw, 0).Export(context.Background(), store, domain.Summary{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "publish weather records")
	assert.Contains(t, err.Error(), "broker unavailable")
	assert.False(t, fw.deadline)
}

func TestWriter_Close(t *testing.T) {
	fw := &fakeWriter{}
	require.NoError(t, newTestWriter(fw, 0).Close())
	assert.True(t, fw.closed)
}
