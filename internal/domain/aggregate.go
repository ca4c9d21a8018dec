package domain

import "time"

// AverageTemperatureForMonth returns the mean Fahrenheit temperature of records
// whose parsed month equals month. It returns 0 when no record matches.
// Records with an unparsed date never match, even when month is UnparsedMonth.
func AverageTemperatureForMonth(s Store, month int) float64 {
	var sum float64
	var n int
	for _, r := range s.All() {
		if !r.Month().Is(month) {
			continue
		}
		sum += r.TemperatureF()
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// CountRainyDays counts records with strictly positive precipitation.
func CountRainyDays(s Store) int {
	n := 0
	for _, r := range s.All() {
		if r.Rainy() {
			n++
		}
	}
	return n
}

// DaysAboveTemperature returns the records warmer than thresholdF (strictly), in store order.
func DaysAboveTemperature(s Store, thresholdF float64) []WeatherRecord {
	out := make([]WeatherRecord, 0)
	for _, r := range s.All() {
		if r.TemperatureF() > thresholdF {
			out = append(out, r)
		}
	}
	return out
}

// CountUnparsedDates counts records whose date matched neither accepted shape.
func CountUnparsedDates(s Store) int {
	n := 0
	for _, r := range s.All() {
		if !r.Month().Parsed() {
			n++
		}
	}
	return n
}

// Summary holds the statistics printed beneath the report table.
type Summary struct {
	Month         int       `json:"month"`
	AverageF      float64   `json:"average_f"`
	RainyDays     int       `json:"rainy_days"`
	ThresholdF    float64   `json:"threshold_f"`
	DaysAbove     int       `json:"days_above"`
	Records       int       `json:"records"`
	UnparsedDates int       `json:"unparsed_dates"`
	GeneratedAt   time.Time `json:"generated_at"`
}

// Summarize computes the report statistics for the given month and Fahrenheit threshold.
func Summarize(s Store, month int, thresholdF float64) Summary {
	return Summary{
		Month:         month,
		AverageF:      AverageTemperatureForMonth(s, month),
		RainyDays:     CountRainyDays(s),
		ThresholdF:    thresholdF,
		DaysAbove:     len(DaysAboveTemperature(s, thresholdF)),
		Records:       s.Len(),
		UnparsedDates: CountUnparsedDates(s),
		GeneratedAt:   clock.Now(),
	}
}
