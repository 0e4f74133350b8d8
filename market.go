package komorebi

import (
	"fmt"
	"slices"

	"github.com/komorebi/invest55/date"
)

// MarketData holds the fetched time series for a set of securities and
// currency pairs. It is the in-memory database the engine computes from:
// securities keep their native currency here, conversion happens later
// in Normalize.
type MarketData struct {
	securities map[string]*PriceSeries
	rates      map[string]*date.Series[float64] // keyed "USDEUR" style
}

// NewMarketData returns an empty market data collection.
func NewMarketData() *MarketData {
	return &MarketData{
		securities: make(map[string]*PriceSeries),
		rates:      make(map[string]*date.Series[float64]),
	}
}

// Has reports whether a security is declared.
func (m *MarketData) Has(ticker string) bool {
	_, ok := m.securities[ticker]
	return ok
}

// Declare registers a security with its quoting currency and returns its
// (possibly pre-existing) price series. Re-declaring with a different
// currency is an error: prices would silently mix units.
func (m *MarketData) Declare(ticker, currency string) (*PriceSeries, error) {
	if err := ValidateTicker(ticker); err != nil {
		return nil, err
	}
	if err := ValidateCurrency(currency); err != nil {
		return nil, fmt.Errorf("declaring %s: %w", ticker, err)
	}
	if s, ok := m.securities[ticker]; ok {
		if s.Currency() != currency {
			return nil, fmt.Errorf("security %s already declared in %s, not %s", ticker, s.Currency(), currency)
		}
		return s, nil
	}
	s := NewPriceSeries(ticker, currency)
	m.securities[ticker] = s
	return s, nil
}

// Security returns the price series for a ticker, nil when unknown.
func (m *MarketData) Security(ticker string) *PriceSeries { return m.securities[ticker] }

// Tickers returns all declared tickers, sorted ascending.
func (m *MarketData) Tickers() []string {
	tickers := make([]string, 0, len(m.securities))
	for t := range m.securities {
		tickers = append(tickers, t)
	}
	slices.Sort(tickers)
	return tickers
}

// pairKey is the market convention for a currency pair: base then quote.
func pairKey(from, to string) string { return from + to }

// Rates returns the rate series quoting one unit of from in to,
// creating it empty on first use.
func (m *MarketData) Rates(from, to string) *date.Series[float64] {
	key := pairKey(from, to)
	s, ok := m.rates[key]
	if !ok {
		s = &date.Series[float64]{}
		m.rates[key] = s
	}
	return s
}

// HasRates reports whether any rate is known for the pair.
func (m *MarketData) HasRates(from, to string) bool {
	s, ok := m.rates[pairKey(from, to)]
	return ok && s.Len() > 0
}

// Pairs returns all currency pairs with known rates, sorted ascending.
func (m *MarketData) Pairs() []string {
	pairs := make([]string, 0, len(m.rates))
	for p, s := range m.rates {
		if s.Len() > 0 {
			pairs = append(pairs, p)
		}
	}
	slices.Sort(pairs)
	return pairs
}

// Currencies returns the distinct currencies securities are quoted in,
// sorted ascending.
func (m *MarketData) Currencies() []string {
	var out []string
	for _, s := range m.securities {
		if !slices.Contains(out, s.Currency()) {
			out = append(out, s.Currency())
		}
	}
	slices.Sort(out)
	return out
}

// Convert re-expresses an amount of currency from in currency to, using
// the rate as of the given date. Same-currency conversion is the
// identity and needs no rate.
func (m *MarketData) Convert(amount float64, from, to string, on date.Date) (float64, error) {
	if from == to {
		return amount, nil
	}
	rate, ok := m.Rates(from, to).AsOf(on)
	if !ok {
		return 0, fmt.Errorf("converting %s to %s on %s: %w", from, to, on, ErrMissingRate)
	}
	return amount * rate, nil
}
