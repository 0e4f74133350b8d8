package komorebi

import (
	"fmt"
	"sort"

	"github.com/komorebi/invest55/date"
	"github.com/shopspring/decimal"
)

// Contribution is one holding's share of the portfolio's total return
// over a period.
type Contribution struct {
	Ticker string

	// Absolute is the holding's gain or loss in reporting currency:
	// weight * notional * (price(end)/price(start) - 1).
	Absolute Money

	// Relative is Absolute as a percentage of the portfolio's total
	// absolute return. When the total return is exactly zero the ratio
	// is undefined and RelativeKnown is false; the value must then be
	// reported as not applicable, never as a division result.
	Relative      Percent
	RelativeKnown bool

	// Performance is the holding's own price return over the period.
	Performance Percent
}

// Attribute breaks the portfolio's realized return between startDate and
// endDate down per holding, ranked by absolute contribution, largest
// first. Ties break on ticker, ascending, so identical inputs always
// produce identical output.
//
// Holdings with an undefined price at either endpoint (not yet trading,
// or delisted before the period) are excluded from the result entirely:
// they did not participate, which is different from contributing zero.
//
// Contributions are recomputed on demand for every period, never cached:
// the sum of all absolute contributions equals the portfolio's value
// change over the period, restricted to the included holdings.
func Attribute(a *AlignedSet, alloc Allocation, notional float64, currency string, startDate, endDate date.Date) ([]Contribution, error) {
	if _, ok := a.Index(startDate); !ok {
		return nil, fmt.Errorf("attribution from %s: %w", startDate, ErrInvalidStartDate)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("attribution period %s..%s: end precedes start", startDate, endDate)
	}

	type span struct {
		ticker     string
		start, end float64
	}
	spans := make([]span, 0, len(a.Tickers()))
	for _, ticker := range a.Tickers() {
		if alloc.Weight(ticker) == 0 {
			continue
		}
		p0, ok0 := a.On(ticker, startDate)
		p1, ok1 := a.On(ticker, endDate)
		if !ok0 || !ok1 || p0 == 0 {
			continue
		}
		spans = append(spans, span{ticker: ticker, start: p0, end: p1})
	}

	// Money math runs on decimals: a portfolio where gains and losses
	// cancel must total exactly zero, not a float residue.
	totalReturn := decimal.Zero
	absolutes := make([]decimal.Decimal, len(spans))
	for i, sp := range spans {
		ret := decimal.NewFromFloat(sp.end).Div(decimal.NewFromFloat(sp.start)).Sub(decimal.NewFromInt(1))
		slice := decimal.NewFromFloat(alloc.Weight(sp.ticker)).Mul(decimal.NewFromFloat(notional))
		absolutes[i] = slice.Mul(ret)
		totalReturn = totalReturn.Add(absolutes[i])
	}

	contributions := make([]Contribution, len(spans))
	for i, sp := range spans {
		c := Contribution{
			Ticker:      sp.ticker,
			Absolute:    Money{value: absolutes[i], cur: currency},
			Performance: Percent(100 * (sp.end/sp.start - 1)),
		}
		if !totalReturn.IsZero() {
			c.Relative = Percent(100 * absolutes[i].Div(totalReturn).InexactFloat64())
			c.RelativeKnown = true
		}
		contributions[i] = c
	}

	// Rank by absolute contribution, largest first; stable tie-break on
	// ticker for deterministic output.
	sort.SliceStable(contributions, func(i, j int) bool {
		a, b := contributions[i].Absolute, contributions[j].Absolute
		if a.Equal(b) {
			return contributions[i].Ticker < contributions[j].Ticker
		}
		return b.LessThan(a)
	})
	return contributions, nil
}
