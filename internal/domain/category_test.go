package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeWeather(t *testing.T) {
	tests := []struct {
		name  string
		tempF float64
		want  Category
	}{
		{"very hot", 95, CategoryVeryHot},
		{"very hot lower bound", 90, CategoryVeryHot},
		{"very hot upper decade", 109.9, CategoryVeryHot},
		{"110 wraps to cold", 110, CategoryCold},
		{"extreme heat", 130, CategoryCold},
		{"hot", 82, CategoryHot},
		{"hot upper bound", 89.99, CategoryHot},
		{"warm", 75, CategoryWarm},
		{"cool upper decade", 65, CategoryCool},
		{"cool lower bound", 50, CategoryCool},
		{"just below cool", 49.99, CategoryCold},
		{"cold", 40, CategoryCold},
		{"freezing", 32, CategoryCold},
		{"negative", -5, CategoryCold},
		{"very negative", -95, CategoryCold},
		{"nan", math.NaN(), CategoryCold},
		{"positive infinity", math.Inf(1), CategoryCold},
		{"huge", 1e12, CategoryCold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategorizeWeather(tt.tempF))
		})
	}
}
