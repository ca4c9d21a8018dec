// Package domain models daily weather observations loaded from a flat CSV export.
//
// # Input Format
//
// One header line (always skipped) followed by one observation per line:
//
//	date,temperatureC,humidity,precipitation
//	2024-08-01,20,50,0
//	8/2/24,25,60,5
//
// No quoting or escaping is supported; a comma inside a field is a format error.
// The three numeric columns are Celsius, relative humidity in percent, and
// precipitation in millimeters.
//
// # Date Conventions
//
// Two shapes are recognized when deriving the month of an observation:
//
//	YYYY-MM-DD        ISO style, month is characters 6–7 ("2024-08-01" → 8)
//	M/D/YY, MM/DD/YY  US spreadsheet style, month is the first segment ("8/2/24" → 8)
//
// Anything else yields an unparsed [Month]. Such records stay in the [Store]
// and appear in the report, but never match a month-filtered aggregation.
// The integer form of an unparsed month is the sentinel -1.
//
// # Derived Fields
//
// Fahrenheit temperature, month, category, and the rainy flag are computed on
// every access from the immutable raw fields. Nothing derived is cached.
//
// Category thresholds bucket the truncated Fahrenheit decade:
//
//	90–109°F Very Hot | 80–89°F Hot | 70–79°F Warm | 50–69°F Cool | anything else Cold
//
// Values at or above 110°F and all negative values fall into Cold as well.
package domain
