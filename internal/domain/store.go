package domain

import (
	"iter"
	"slices"
)

// Store is the ordered, read-only collection of records loaded for one run.
// Input order is preserved; nothing is deduplicated, sorted, or removed.
type Store struct {
	records []WeatherRecord
}

// NewStore copies records into a Store so later changes to the caller's slice are not observed.
func NewStore(records []WeatherRecord) Store {
	return Store{records: slices.Clone(records)}
}

// Len returns the number of records.
func (s Store) Len() int { return len(s.records) }

// At returns the i-th record in input order.
func (s Store) At(i int) WeatherRecord { return s.records[i] }

// All iterates over the records in input order.
func (s Store) All() iter.Seq2[int, WeatherRecord] {
	return slices.All(s.records)
}

// Records returns a copy of the records in input order.
func (s Store) Records() []WeatherRecord {
	return slices.Clone(s.records)
}
