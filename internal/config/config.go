package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all analyzer settings, populated from environment variables.
type Config struct {
	DataPath        string
	ReportMonth     int
	ReportThreshold float64
	LogLevel        string
	LogFormat       string
	MetricsTextfile string

	// Kafka record export configuration.
	KafkaEnabled      bool
	KafkaBrokers      []string
	KafkaSinkTopic    string
	KafkaWriteTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	month, err := strconv.Atoi(sharedcfg.EnvOrDefault("REPORT_MONTH", "8"))
	if err != nil || month < 1 || month > 12 {
		return nil, errors.New("invalid REPORT_MONTH: must be 1-12")
	}

	threshold, err := strconv.ParseFloat(sharedcfg.EnvOrDefault("REPORT_THRESHOLD_F", "86"), 64)
	if err != nil {
		return nil, errors.New("invalid REPORT_THRESHOLD_F")
	}

	writeTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("KAFKA_WRITE_TIMEOUT", "10s"))
	if err != nil || writeTimeout <= 0 {
		return nil, errors.New("invalid KAFKA_WRITE_TIMEOUT")
	}

	cfg := &Config{
		DataPath:        sharedcfg.EnvOrDefault("WEATHER_DATA_PATH", "weatherdata.csv"),
		ReportMonth:     month,
		ReportThreshold: threshold,
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),

		KafkaEnabled:      os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers:      sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic:    sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "weather-records"),
		KafkaWriteTimeout: writeTimeout,
	}

	if cfg.DataPath == "" {
		return nil, errors.New("WEATHER_DATA_PATH is required")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.KafkaEnabled && cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_SINK_TOPIC is empty")
	}

	return cfg, nil
}
