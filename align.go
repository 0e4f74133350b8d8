package komorebi

import (
	"slices"

	"github.com/komorebi/invest55/date"
)

// AlignedSet holds several price series resampled onto one shared date
// axis: the sorted union of every input's trading days. Gaps are filled
// by carrying the last known price forward. Days before a series' first
// observation are undefined for that ticker, explicitly, not zero, so
// a holding that has not started trading contributes nothing rather than
// a phantom loss.
type AlignedSet struct {
	axis    []date.Date
	tickers []string
	values  map[string][]float64
	defined map[string][]bool
}

// Align resamples the given series onto their union calendar. The result
// is deterministic: it depends only on the set of inputs, not on map
// iteration or fetch order.
func Align(series map[string]*PriceSeries) *AlignedSet {
	tickers := make([]string, 0, len(series))
	all := make([]*date.Series[float64], 0, len(series))
	for ticker, s := range series {
		tickers = append(tickers, ticker)
		all = append(all, s.Prices())
	}
	slices.Sort(tickers)

	a := &AlignedSet{
		axis:    date.Union(all...),
		tickers: tickers,
		values:  make(map[string][]float64, len(series)),
		defined: make(map[string][]bool, len(series)),
	}

	for _, ticker := range tickers {
		prices := series[ticker].Prices()
		values := make([]float64, len(a.axis))
		defined := make([]bool, len(a.axis))
		for i, on := range a.axis {
			if v, ok := prices.AsOf(on); ok {
				values[i] = v
				defined[i] = true
			}
		}
		a.values[ticker] = values
		a.defined[ticker] = defined
	}
	return a
}

// Axis returns the shared date axis.
func (a *AlignedSet) Axis() []date.Date { return a.axis }

// Tickers returns the tickers in the set, sorted ascending.
func (a *AlignedSet) Tickers() []string { return a.tickers }

// Len returns the length of the date axis.
func (a *AlignedSet) Len() int { return len(a.axis) }

// Index returns the axis position of a date, or false when the date is
// not on the axis.
func (a *AlignedSet) Index(on date.Date) (int, bool) {
	return slices.BinarySearchFunc(a.axis, on, date.Date.Compare)
}

// At returns the ticker's value at axis position i. The second result is
// false when the value is undefined there (the date precedes the
// ticker's first observation, or the ticker is not in the set).
func (a *AlignedSet) At(ticker string, i int) (float64, bool) {
	defined, ok := a.defined[ticker]
	if !ok || !defined[i] {
		return 0, false
	}
	return a.values[ticker][i], true
}

// On returns the ticker's value on a date, false when undefined or when
// the date is off the axis.
func (a *AlignedSet) On(ticker string, on date.Date) (float64, bool) {
	i, ok := a.Index(on)
	if !ok {
		return 0, false
	}
	return a.At(ticker, i)
}
