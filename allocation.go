package komorebi

import "slices"

// Allocation maps tickers to their fraction of the invested notional.
// Weights sum to 1 and stay fixed for the session: the portfolio is
// never rebalanced.
//
// When a holding is later dropped (failed fetch, missing rate), its
// weight is NOT redistributed: the remaining holdings keep their 1/N
// share and the portfolio simply starts below the full notional. This
// keeps every surviving holding's contribution comparable across runs
// with different data availability.
type Allocation map[string]float64

// EqualWeight allocates 1/N to each of the given tickers.
func EqualWeight(tickers []string) Allocation {
	a := make(Allocation, len(tickers))
	if len(tickers) == 0 {
		return a
	}
	w := 1.0 / float64(len(tickers))
	for _, t := range tickers {
		a[t] = w
	}
	return a
}

// Weight returns the ticker's weight, zero when absent.
func (a Allocation) Weight(ticker string) float64 { return a[ticker] }

// Tickers returns the allocated tickers, sorted ascending.
func (a Allocation) Tickers() []string {
	tickers := make([]string, 0, len(a))
	for t := range a {
		tickers = append(tickers, t)
	}
	slices.Sort(tickers)
	return tickers
}
