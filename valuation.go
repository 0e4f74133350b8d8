package komorebi

import (
	"fmt"

	"github.com/komorebi/invest55/date"
)

// ValuationPoint is the portfolio's total value on one date.
type ValuationPoint struct {
	Date  date.Date
	Value float64
}

// ValuationSeries is the portfolio's value over time, in the reporting
// currency, starting at the inception date.
type ValuationSeries struct {
	Currency string
	Points   []ValuationPoint
}

// Final returns the last point of the series.
func (v *ValuationSeries) Final() ValuationPoint {
	return v.Points[len(v.Points)-1]
}

// Start returns the first point of the series.
func (v *ValuationSeries) Start() ValuationPoint {
	return v.Points[0]
}

// AsOf returns the value on the latest point at or before the given
// date, and false when the series has no point that early.
func (v *ValuationSeries) AsOf(on date.Date) (float64, bool) {
	var value float64
	found := false
	for _, pt := range v.Points {
		if pt.Date.After(on) {
			break
		}
		value, found = pt.Value, true
	}
	return value, found
}

// Valuate simulates investing a notional amount, split per the
// allocation, at the start date.
//
// Each holding's slice of the notional is converted into a fixed unit
// count at its start-date price; from then on the holding is worth
// units * price, with prices already carried forward by the alignment.
// Holdings with no price on or before the start date are skipped
// entirely, and no weight is redistributed, so with k of N holdings
// missing the start value is notional*(N-k)/N.
//
// By construction the total at startDate equals the invested notional
// (up to floating point) when every holding is priced there.
//
// The start date must be on the aligned axis, otherwise the request is
// rejected with ErrInvalidStartDate.
func Valuate(a *AlignedSet, alloc Allocation, notional float64, currency string, startDate date.Date) (*ValuationSeries, error) {
	start, ok := a.Index(startDate)
	if !ok {
		return nil, fmt.Errorf("valuation from %s: %w", startDate, ErrInvalidStartDate)
	}

	// Fixed unit counts, bought at start-date prices.
	units := make(map[string]float64, len(alloc))
	for _, ticker := range a.Tickers() {
		w := alloc.Weight(ticker)
		if w == 0 {
			continue
		}
		price, ok := a.At(ticker, start)
		if !ok {
			// Not yet trading at inception: the holding stays out.
			continue
		}
		units[ticker] = notional * w / price
	}

	series := &ValuationSeries{
		Currency: currency,
		Points:   make([]ValuationPoint, 0, a.Len()-start),
	}
	for i := start; i < a.Len(); i++ {
		var total float64
		for ticker, n := range units {
			price, ok := a.At(ticker, i)
			if !ok {
				// Unreachable once priced at start (forward-fill never
				// un-defines a value), but absence must stay absence.
				continue
			}
			total += n * price
		}
		series.Points = append(series.Points, ValuationPoint{Date: a.axis[i], Value: total})
	}
	return series, nil
}
