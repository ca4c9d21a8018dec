package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

// UnparsedMonth is the integer form of a month that could not be derived from a date.
const UnparsedMonth = -1

// Month is the month derived from a record's date. The zero value is unparsed.
type Month struct {
	value  int
	parsed bool
}

// MonthOf returns a parsed Month holding n. No range check is applied.
func MonthOf(n int) Month {
	return Month{value: n, parsed: true}
}

// Get returns the month number and whether the date was recognized.
func (m Month) Get() (int, bool) {
	return m.value, m.parsed
}

// Parsed reports whether the date matched one of the accepted shapes.
func (m Month) Parsed() bool { return m.parsed }

// Is reports whether m is a parsed month equal to n. An unparsed month matches nothing.
func (m Month) Is(n int) bool {
	return m.parsed && m.value == n
}

// Int returns the month number, or UnparsedMonth.
func (m Month) Int() int {
	if !m.parsed {
		return UnparsedMonth
	}
	return m.value
}

func (m Month) String() string {
	return strconv.Itoa(m.Int())
}

// WeatherRecord is one daily observation. It is immutable once constructed.
type WeatherRecord struct {
	date          string
	temperatureC  float64
	humidity      float64
	precipitation float64
}

// NewWeatherRecord builds a record from raw field values.
func NewWeatherRecord(date string, temperatureC, humidity, precipitation float64) WeatherRecord {
	return WeatherRecord{
		date:          date,
		temperatureC:  temperatureC,
		humidity:      humidity,
		precipitation: precipitation,
	}
}

// Date returns the date text exactly as it appeared in the input.
func (r WeatherRecord) Date() string { return r.date }

// TemperatureC returns the observed temperature in degrees Celsius.
func (r WeatherRecord) TemperatureC() float64 { return r.temperatureC }

// Humidity returns relative humidity in percent.
func (r WeatherRecord) Humidity() float64 { return r.humidity }

// Precipitation returns precipitation in millimeters.
func (r WeatherRecord) Precipitation() float64 { return r.precipitation }

// TemperatureF converts the observed temperature to Fahrenheit.
func (r WeatherRecord) TemperatureF() float64 {
	return CelsiusToF(r.temperatureC)
}

// Month derives the observation month from the raw date.
func (r WeatherRecord) Month() Month {
	return ExtractMonth(r.date)
}

// Category buckets the Fahrenheit temperature.
func (r WeatherRecord) Category() Category {
	return CategorizeWeather(r.TemperatureF())
}

// Rainy reports whether any precipitation fell. Exactly zero is dry.
func (r WeatherRecord) Rainy() bool {
	return r.precipitation > 0
}

// CelsiusToF converts degrees Celsius to degrees Fahrenheit.
func CelsiusToF(c float64) float64 {
	return c*9/5 + 32
}

type recordJSON struct {
	Date          string   `json:"date"`
	TemperatureC  *float64 `json:"temperature_c"`
	TemperatureF  *float64 `json:"temperature_f"`
	Humidity      *float64 `json:"humidity"`
	Precipitation *float64 `json:"precipitation"`
	Month         *int     `json:"month"`
	Category      Category `json:"category"`
	Rainy         bool     `json:"rainy"`
}

// MarshalJSON renders the raw fields together with every derived field.
// An unparsed month and any NaN or infinite reading are encoded as null.
func (r WeatherRecord) MarshalJSON() ([]byte, error) {
	out := recordJSON{
		Date:          r.date,
		TemperatureC:  finite(r.temperatureC),
		TemperatureF:  finite(r.TemperatureF()),
		Humidity:      finite(r.humidity),
		Precipitation: finite(r.precipitation),
		Category:      r.Category(),
		Rainy:         r.Rainy(),
	}
	if m, ok := r.Month().Get(); ok {
		out.Month = &m
	}
	return json.Marshal(out)
}

// finite returns nil for values JSON cannot represent.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
