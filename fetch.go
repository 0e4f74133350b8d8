package komorebi

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/komorebi/invest55/date"
)

// PriceSource supplies daily closing prices for one ticker over a date
// range, in whatever currency the source quotes it. Implementations may
// be slow and may fail; the engine never retries; if a source wants
// retry or backoff, that is its own business.
type PriceSource interface {
	Daily(ctx context.Context, ticker string, r date.Range) (*PriceSeries, error)
}

// RateSource supplies daily exchange rates quoting one unit of the from
// currency in the to currency.
type RateSource interface {
	DailyRate(ctx context.Context, from, to string, r date.Range) (*date.Series[float64], error)
}

// DefaultFetchTimeout bounds one whole fetch request. Individual tickers
// share the deadline; whatever has not completed when it expires is
// dropped like any other failed holding.
const DefaultFetchTimeout = 2 * time.Minute

// FetchPrices retrieves price series for all tickers concurrently. Each
// ticker gets its own goroutine, with no shared mutable state
// between fetches, and all of them complete (or fail) before the call
// returns, because alignment needs the full set to compute the union
// calendar.
//
// A failed ticker is dropped from the result with a warning, not an
// error: partial data keeps the dashboard usable. Results are merged
// into market, declaring securities as they appear.
func FetchPrices(ctx context.Context, src PriceSource, market *MarketData, tickers []string, r date.Range) []string {
	ctx, cancel := context.WithTimeout(ctx, DefaultFetchTimeout)
	defer cancel()

	type result struct {
		ticker string
		series *PriceSeries
		err    error
	}
	results := make(chan result, len(tickers))

	var wg sync.WaitGroup
	for _, ticker := range tickers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			series, err := src.Daily(ctx, ticker, r)
			results <- result{ticker: ticker, series: series, err: err}
		}()
	}
	wg.Wait()
	close(results)

	var warnings []string
	for res := range results {
		if res.err != nil {
			ferr := &FetchError{Ticker: res.ticker, Err: res.err}
			warnings = append(warnings, ferr.Error())
			log.Printf("warning: %v, holding dropped", ferr)
			continue
		}
		if res.series.Len() == 0 {
			warnings = append(warnings, fmt.Sprintf("fetching %s: empty series", res.ticker))
			log.Printf("warning: empty series for %s, holding dropped", res.ticker)
			continue
		}
		dst, err := market.Declare(res.ticker, res.series.Currency())
		if err != nil {
			warnings = append(warnings, err.Error())
			log.Printf("warning: %v, holding dropped", err)
			continue
		}
		for on, close := range res.series.Prices().Values() {
			dst.Append(on, close)
		}
	}
	return warnings
}

// FetchRates retrieves the exchange rates needed to convert every
// currency present in market into the base currency, sequentially:
// there are few pairs and FX sources tend to rate-limit harder than
// price sources. Pairs that fail are recorded as warnings; the holdings
// needing them will be dropped at normalization.
func FetchRates(ctx context.Context, src RateSource, market *MarketData, base string, r date.Range) []string {
	ctx, cancel := context.WithTimeout(ctx, DefaultFetchTimeout)
	defer cancel()

	var warnings []string
	for _, from := range market.Currencies() {
		if from == base {
			continue
		}
		series, err := src.DailyRate(ctx, from, base, r)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("fetching %s%s rates: %v", from, base, err))
			log.Printf("warning: no %s%s rates: %v", from, base, err)
			continue
		}
		dst := market.Rates(from, base)
		for on, rate := range series.Values() {
			dst.Append(on, rate)
		}
	}
	return warnings
}
