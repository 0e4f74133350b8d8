package komorebi

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/komorebi/invest55/date"
)

// This file implements the EODHD.com data provider, the engine's price
// and exchange-rate source.

const eodhdAPIKeyEnv = "EODHD_API_KEY"

var eodhdAPIFlag = flag.String("eodhd-api-key", "", "EODHD API key for fetching prices.\nIf missing, the environment variable "+eodhdAPIKeyEnv+" is read. Get one at https://eodhd.com/")

func eodhdAPIKey() string {
	if *eodhdAPIFlag == "" {
		*eodhdAPIFlag = os.Getenv(eodhdAPIKeyEnv)
	}
	return *eodhdAPIFlag
}

// EODHD fetches daily prices and exchange rates from eodhd.com. It
// satisfies both PriceSource and RateSource. The zero value reads the
// API key from the flag or environment on first use.
type EODHD struct {
	APIKey string

	currencies map[string]string // exchange suffix -> quoting currency
}

var _ PriceSource = (*EODHD)(nil)
var _ RateSource = (*EODHD)(nil)

func (e *EODHD) key() (string, error) {
	if e.APIKey == "" {
		e.APIKey = eodhdAPIKey()
	}
	if e.APIKey == "" {
		return "", errors.New("EODHD API key is not set. Use -eodhd-api-key or " + eodhdAPIKeyEnv)
	}
	return e.APIKey, nil
}

// exchangeCurrency resolves the currency a ticker is quoted in from its
// exchange suffix ("ERF.PA" trades on Paris, in EUR). US tickers carry
// no suffix and quote in USD. The exchange list is queried at most once
// a day thanks to the daily cache.
func (e *EODHD) exchangeCurrency(ctx context.Context, ticker string) (string, error) {
	suffix := "US"
	if i := strings.LastIndex(ticker, "."); i >= 0 {
		suffix = ticker[i+1:]
	}

	if e.currencies == nil {
		apiKey, err := e.key()
		if err != nil {
			return "", err
		}
		// https://eodhd.com/api/exchanges-list/ returns one record per
		// exchange:
		//   {"Name":"Euronext Paris","Code":"PA","OperatingMIC":"XPAR",
		//    "Country":"France","Currency":"EUR", ...}
		type info struct {
			Code     string
			Currency string
		}
		addr := "https://eodhd.com/api/exchanges-list/?fmt=json&api_token=" + url.QueryEscape(apiKey)
		var content []info
		if err := jwget(daily(), addr, &content); err != nil {
			return "", err
		}
		e.currencies = make(map[string]string, len(content))
		for _, x := range content {
			if x.Currency != "" {
				e.currencies[x.Code] = x.Currency
			}
		}
	}

	currency, ok := e.currencies[suffix]
	if !ok {
		return "", fmt.Errorf("unknown exchange suffix %q for ticker %s", suffix, ticker)
	}
	return currency, nil
}

// Daily returns the split-adjusted daily closes for a ticker, in the
// currency of its exchange.
func (e *EODHD) Daily(ctx context.Context, ticker string, r date.Range) (*PriceSeries, error) {
	currency, err := e.exchangeCurrency(ctx, ticker)
	if err != nil {
		return nil, err
	}
	closes, _, err := e.daily(ctx, ticker, r)
	if err != nil {
		return nil, err
	}
	series := NewPriceSeries(ticker, currency)
	for on, v := range closes.Values() {
		series.Append(on, v)
	}
	return series, nil
}

// DailyRate returns the daily from→to exchange rates.
//
// The FOREX "close" on eodhd is unreliable and usually equals the open;
// the next day's open tracks the truth much better, so the open series
// is shifted back one day and used as the close.
func (e *EODHD) DailyRate(ctx context.Context, from, to string, r date.Range) (*date.Series[float64], error) {
	if err := ValidateCurrency(from); err != nil {
		return nil, err
	}
	if err := ValidateCurrency(to); err != nil {
		return nil, err
	}
	// Forex tickers follow the "EURUSD.FOREX" convention. Fetch one day
	// past the range so the shift does not lose the last rate.
	ticker := from + to + ".FOREX"
	_, opens, err := e.daily(ctx, ticker, date.NewRange(r.From, r.To.Add(1)))
	if err != nil {
		return nil, err
	}
	rates := &date.Series[float64]{}
	for on, v := range opens.Values() {
		rates.Append(on.Add(-1), v)
	}
	return rates, nil
}

// daily fetches the raw close and open series for any eodhd ticker.
func (e *EODHD) daily(ctx context.Context, ticker string, r date.Range) (closes, opens date.Series[float64], err error) {
	apiKey, err := e.key()
	if err != nil {
		return closes, opens, err
	}

	// https://eodhd.com/api/eod/ERF.PA?... returns one record per
	// trading day:
	//   {"date":"2023-01-05","open":67.2,"close":67.84,
	//    "adjusted_close":67.84,"volume":123456, ...}
	addr := fmt.Sprintf("https://eodhd.com/api/eod/%s?fmt=json&api_token=%s&from=%s&to=%s",
		url.PathEscape(ticker), url.QueryEscape(apiKey), r.From, r.To)

	type info struct {
		Date  date.Date `json:"date"`
		Close float64   `json:"adjusted_close"`
		Open  float64   `json:"open"`
	}
	var content []info
	if err := jwget(daily(), addr, &content); err != nil {
		return closes, opens, err
	}
	for _, x := range content {
		closes.Append(x.Date, x.Close)
		opens.Append(x.Date, x.Open)
	}
	return closes, opens, nil
}
