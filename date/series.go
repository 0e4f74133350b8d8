package date

import (
	"iter"
	"slices"
)

// Series stores a chronological sequence of values, one per date.
// Dates are unique and kept sorted ascending, so the series always
// satisfies the strictly-increasing invariant regardless of insertion
// order.
//
// The zero value is an empty series ready to use.
type Series[T float32 | float64 | string] struct {
	days   []Date
	values []T
}

// Len returns the number of observations in the series.
func (s *Series[T]) Len() int { return len(s.days) }

// Append records a value for a date. Appending to the end is O(1);
// out-of-order dates are inserted at their sorted position, and an
// existing observation on the same date is overwritten, giving priority
// to the latest data.
func (s *Series[T]) Append(on Date, v T) *Series[T] {
	i, found := slices.BinarySearchFunc(s.days, on, Date.Compare)
	if found {
		s.values[i] = v
		return s
	}
	s.days = slices.Insert(s.days, i, on)
	s.values = slices.Insert(s.values, i, v)
	return s
}

// Get returns the value observed exactly on that date.
func (s *Series[T]) Get(on Date) (T, bool) {
	i, found := slices.BinarySearchFunc(s.days, on, Date.Compare)
	if !found {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

// AsOf returns the value observed on that date, or carried forward from
// the most recent observation before it. It returns false when the date
// precedes the first observation: there is nothing to carry forward.
func (s *Series[T]) AsOf(on Date) (T, bool) {
	i, found := slices.BinarySearchFunc(s.days, on, Date.Compare)
	if found {
		return s.values[i], true
	}
	if i == 0 {
		var zero T
		return zero, false
	}
	return s.values[i-1], true
}

// First returns the earliest date and value, or false on an empty series.
func (s *Series[T]) First() (Date, T, bool) {
	if len(s.days) == 0 {
		var zero T
		return Date{}, zero, false
	}
	return s.days[0], s.values[0], true
}

// Last returns the latest date and value, or false on an empty series.
func (s *Series[T]) Last() (Date, T, bool) {
	if len(s.days) == 0 {
		var zero T
		return Date{}, zero, false
	}
	last := len(s.days) - 1
	return s.days[last], s.values[last], true
}

// Values iterates over all date/value pairs in chronological order.
func (s *Series[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range s.days {
			if !yield(on, s.values[i]) {
				return
			}
		}
	}
}

// Days returns a copy of the series' date axis.
func (s *Series[T]) Days() []Date { return slices.Clone(s.days) }

// Union merges the date axes of several series into one sorted slice of
// distinct dates. The result depends only on the set of input dates, not
// on the order the series are given.
func Union[T float32 | float64 | string](series ...*Series[T]) []Date {
	var axis []Date
	for _, s := range series {
		axis = append(axis, s.days...)
	}
	slices.SortFunc(axis, Date.Compare)
	return slices.Compact(axis)
}
