package domain

import "math"

// Category is a coarse temperature label.
type Category string

const (
	CategoryVeryHot Category = "Very Hot"
	CategoryHot     Category = "Hot"
	CategoryWarm    Category = "Warm"
	CategoryCool    Category = "Cool"
	CategoryCold    Category = "Cold"
)

// categoryBuckets maps inclusive decade ranges to labels, checked in order.
// Decades outside every range are Cold.
var categoryBuckets = []struct {
	minDecade, maxDecade int
	category             Category
}{
	{9, 10, CategoryVeryHot},
	{8, 8, CategoryHot},
	{7, 7, CategoryWarm},
	{5, 6, CategoryCool},
}

// CategorizeWeather buckets a Fahrenheit temperature by its decade, where the
// decade is the temperature truncated toward zero and divided by ten:
//   - 90–109: Very Hot
//   - 80–89: Hot
//   - 70–79: Warm
//   - 50–69: Cool
//   - everything else, including negatives and ≥110: Cold
func CategorizeWeather(tempF float64) Category {
	if math.IsNaN(tempF) || math.IsInf(tempF, 0) {
		return CategoryCold
	}
	// Out-of-range float to int conversion is implementation-defined in Go.
	if tempF >= math.MaxInt32 || tempF <= math.MinInt32 {
		return CategoryCold
	}

	decade := int(tempF) / 10
	for _, b := range categoryBuckets {
		if decade >= b.minDecade && decade <= b.maxDecade {
			return b.category
		}
	}
	return CategoryCold
}
