package komorebi

import (
	"fmt"
	"log"

	"github.com/komorebi/invest55/date"
)

// Portfolio combines market data with company reference data and a
// reporting currency. It is the central point of access for every
// report: normalization, alignment, valuation and attribution all start
// here.
//
// The portfolio is equal-weighted over the reference's tickers and the
// weights never change; see Allocation for the dropped-holding policy.
type Portfolio struct {
	Market    *MarketData
	Reference *Reference
	Base      string // reporting currency
}

// NewPortfolio creates a portfolio valued in the given reporting
// currency.
func NewPortfolio(market *MarketData, ref *Reference, base string) (*Portfolio, error) {
	if err := ValidateCurrency(base); err != nil {
		return nil, fmt.Errorf("invalid reporting currency: %w", err)
	}
	return &Portfolio{Market: market, Reference: ref, Base: base}, nil
}

// Allocation returns the fixed equal-weight allocation over the
// reference tickers. Tickers without market data keep their weight; they
// are dropped later, weight undistributed.
func (p *Portfolio) Allocation() Allocation {
	return EqualWeight(p.Reference.Tickers())
}

// Normalized converts every holding's price series into the reporting
// currency. A holding whose conversion fails for lack of a usable exchange rate
// is dropped with a warning rather than aborting the whole computation:
// a reduced portfolio is still comparable, a partially converted one is
// not.
func (p *Portfolio) Normalized() (map[string]*PriceSeries, []string) {
	normalized := make(map[string]*PriceSeries)
	var warnings []string
	for _, ticker := range p.Reference.Tickers() {
		s := p.Market.Security(ticker)
		if s == nil || s.Len() == 0 {
			warnings = append(warnings, fmt.Sprintf("no price data for %s, holding dropped", ticker))
			continue
		}
		n, err := Normalize(s, p.Base, p.Market.Rates(s.Currency(), p.Base))
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("cannot convert %s: %v, holding dropped", ticker, err))
			continue
		}
		normalized[ticker] = n
	}
	for _, w := range warnings {
		log.Printf("warning: %s", w)
	}
	return normalized, warnings
}

// Aligned returns every surviving holding resampled onto the union
// calendar, in reporting currency, along with the warnings for dropped
// holdings.
func (p *Portfolio) Aligned() (*AlignedSet, []string) {
	normalized, warnings := p.Normalized()
	return Align(normalized), warnings
}

// Valuation simulates investing the notional equally across holdings at
// startDate and returns the portfolio value series in the reporting
// currency.
func (p *Portfolio) Valuation(notional float64, startDate date.Date) (*ValuationSeries, []string, error) {
	aligned, warnings := p.Aligned()
	if aligned.Len() == 0 {
		return nil, warnings, fmt.Errorf("no market data for any holding")
	}
	series, err := Valuate(aligned, p.Allocation(), notional, p.Base, startDate)
	if err != nil {
		return nil, warnings, err
	}
	return series, warnings, nil
}

// Contributions attributes the portfolio return between startDate and
// endDate to individual holdings, ranked by absolute contribution.
func (p *Portfolio) Contributions(notional float64, startDate, endDate date.Date) ([]Contribution, []string, error) {
	aligned, warnings := p.Aligned()
	if aligned.Len() == 0 {
		return nil, warnings, fmt.Errorf("no market data for any holding")
	}
	contributions, err := Attribute(aligned, p.Allocation(), notional, p.Base, startDate, endDate)
	if err != nil {
		return nil, warnings, err
	}
	return contributions, warnings, nil
}

// Benchmark rescales an index onto the notional at startDate. The index
// is looked up in market data by its symbol, e.g. "^FCHI".
func (p *Portfolio) Benchmark(symbol string, notional float64, startDate date.Date) (*ValuationSeries, error) {
	index := p.Market.Security(symbol)
	if index == nil || index.Len() == 0 {
		return nil, &FetchError{Ticker: symbol, Err: fmt.Errorf("no index data")}
	}
	return Rescale(index, notional, startDate)
}
