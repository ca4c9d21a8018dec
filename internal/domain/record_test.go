package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCelsiusToF(t *testing.T) {
	tests := []struct {
		celsius    float64
		fahrenheit float64
	}{
		{0, 32},
		{100, 212},
		{-40, -40},
		{20, 68},
		{30, 86},
		{37, 98.6},
	}

	for _, tt := range tests {
		assert.InDelta(t, tt.fahrenheit, CelsiusToF(tt.celsius), 1e-9, "celsius=%v", tt.celsius)
	}
}

func TestMonth(t *testing.T) {
	t.Run("zero value is unparsed", func(t *testing.T) {
		var m Month
		_, ok := m.Get()
		assert.False(t, ok)
		assert.Equal(t, UnparsedMonth, m.Int())
		assert.Equal(t, "-1", m.String())
	})

	t.Run("unparsed never matches the sentinel", func(t *testing.T) {
		assert.False(t, Month{}.Is(UnparsedMonth))
	})

	t.Run("parsed month", func(t *testing.T) {
		m := MonthOf(8)
		assert.True(t, m.Parsed())
		assert.True(t, m.Is(8))
		assert.False(t, m.Is(7))
		assert.Equal(t, "8", m.String())
	})
}

func TestWeatherRecord_DerivedFields(t *testing.T) {
	rec := NewWeatherRecord("8/2/24", 25, 60, 5)

	assert.Equal(t, 77.0, rec.TemperatureF())
	assert.Equal(t, 8, rec.Month().Int())
	assert.Equal(t, CategoryWarm, rec.Category())
	assert.True(t, rec.Rainy())

	dry := NewWeatherRecord("8/3/24", 25, 60, 0)
	assert.False(t, dry.Rainy())
}

func TestWeatherRecord_MarshalJSON(t *testing.T) {
	t.Run("parsed month", func(t *testing.T) {
		data, err := json.Marshal(NewWeatherRecord("2024-08-01", 20, 50, 0))
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"date": "2024-08-01",
			"temperature_c": 20,
			"temperature_f": 68,
			"humidity": 50,
			"precipitation": 0,
			"month": 8,
			"category": "Cool",
			"rainy": false
		}`, string(data))
	})

	t.Run("unparsed month is null", func(t *testing.T) {
		data, err := json.Marshal(NewWeatherRecord("yesterday", 35, 40, 1.5))
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"date": "yesterday",
			"temperature_c": 35,
			"temperature_f": 95,
			"humidity": 40,
			"precipitation": 1.5,
			"month": null,
			"category": "Very Hot",
			"rainy": true
		}`, string(data))
	})

	t.Run("non-finite readings are null", func(t *testing.T) {
		data, err := json.Marshal(NewWeatherRecord("2024-08-01", math.NaN(), 50, math.Inf(1)))
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"date": "2024-08-01",
			"temperature_c": null,
			"temperature_f": null,
			"humidity": 50,
			"precipitation": null,
			"month": 8,
			"category": "Cold",
			"rainy": true
		}`, string(data))
	})
}
