package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FieldCount is the number of comma-separated columns in every data line.
const FieldCount = 4

var (
	// ErrFieldCount is returned when a line does not have exactly FieldCount columns.
	ErrFieldCount = errors.New("wrong field count")

	// ErrInvalidNumber is returned when a numeric column does not parse as a float.
	ErrInvalidNumber = errors.New("invalid number")
)

var (
	// isoDateRe matches "YYYY-MM-DD", e.g. "2024-08-01".
	isoDateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	// usDateRe matches "M/D/YY" and "MM/DD/YY", e.g. "8/1/24" or "08/01/24".
	usDateRe = regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{2}$`)

	// decimalRe matches plain decimal numbers, e.g. "20", "-3.5", ".5" or "1e3".
	// Go-only forms like "1_0" or "0x1p3" do not match, and neither do "inf" or "NaN".
	decimalRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

var numericColumns = [FieldCount - 1]string{"temperature", "humidity", "precipitation"}

// ParseLine converts one data line into a WeatherRecord. The date column is kept
// verbatim; month recognition happens lazily through WeatherRecord.Month.
func ParseLine(line string) (WeatherRecord, error) {
	line = strings.TrimSuffix(line, "\r")
	parts := strings.Split(line, ",")
	if len(parts) != FieldCount {
		return WeatherRecord{}, fmt.Errorf("%w: expected %d, got %d", ErrFieldCount, FieldCount, len(parts))
	}

	var values [FieldCount - 1]float64
	for i, name := range numericColumns {
		v, err := parseNumber(parts[i+1])
		if err != nil {
			return WeatherRecord{}, fmt.Errorf("%w: %s %q", ErrInvalidNumber, name, parts[i+1])
		}
		values[i] = v
	}

	return NewWeatherRecord(parts[0], values[0], values[1], values[2]), nil
}

// parseNumber parses a finite decimal number. Exponents that overflow float64
// are rejected by strconv.ParseFloat with a range error.
func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !decimalRe.MatchString(s) {
		return 0, ErrInvalidNumber
	}
	return strconv.ParseFloat(s, 64)
}

// ExtractMonth derives the month from a date in one of the two accepted shapes.
// Any other text returns an unparsed Month.
func ExtractMonth(date string) Month {
	switch {
	case isoDateRe.MatchString(date):
		n, err := strconv.Atoi(date[5:7])
		if err != nil {
			return Month{}
		}
		return MonthOf(n)
	case usDateRe.MatchString(date):
		first, _, _ := strings.Cut(date, "/")
		n, err := strconv.Atoi(first)
		if err != nil {
			return Month{}
		}
		return MonthOf(n)
	default:
		return Month{}
	}
}
