package komorebi

import (
	"fmt"

	"github.com/komorebi/invest55/date"
)

// Rescale projects a benchmark index onto the portfolio's notional: the
// index level at the start date maps to the notional, and every other
// level is scaled by the same factor. The result is directly comparable
// to a ValuationSeries produced by Valuate.
//
// The index needs a level on or before the start date, otherwise the
// request is rejected with ErrInvalidStartDate.
func Rescale(index *PriceSeries, notional float64, startDate date.Date) (*ValuationSeries, error) {
	base, ok := index.AsOf(startDate)
	if !ok || base == 0 {
		return nil, fmt.Errorf("rescaling %s from %s: %w", index.Ticker(), startDate, ErrInvalidStartDate)
	}
	factor := notional / base

	series := &ValuationSeries{
		Currency: index.Currency(),
		Points:   make([]ValuationPoint, 0, index.Len()),
	}
	// Anchor the series at the start date even when the index does not
	// trade that day; the last level before it carries forward.
	series.Points = append(series.Points, ValuationPoint{Date: startDate, Value: notional})
	for on, level := range index.Prices().Values() {
		if !startDate.Before(on) {
			continue
		}
		series.Points = append(series.Points, ValuationPoint{Date: on, Value: level * factor})
	}
	return series, nil
}
