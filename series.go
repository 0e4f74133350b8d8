package komorebi

import (
	"fmt"
	"regexp"

	"github.com/komorebi/invest55/date"
)

// currencyCodeRegex checks for the ISO 4217 format: 3 uppercase letters.
var currencyCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// tickerRegex checks Yahoo-style symbols: "GOOGL", "ERF.PA", "ROG.SW",
// and index symbols like "^FCHI".
var tickerRegex = regexp.MustCompile(`^\^?[A-Z0-9][A-Z0-9-]*(\.[A-Z]{1,4})?$`)

// ValidateCurrency checks if a string is a validly formatted ISO 4217
// currency code. It validates the format only, not whether the code is
// officially assigned.
func ValidateCurrency(code string) error {
	if !currencyCodeRegex.MatchString(code) {
		return fmt.Errorf("invalid currency %q: must be 3 uppercase letters", code)
	}
	return nil
}

// ValidateTicker checks if a string is an acceptable security or index
// symbol.
func ValidateTicker(ticker string) error {
	if !tickerRegex.MatchString(ticker) {
		return fmt.Errorf("invalid ticker %q", ticker)
	}
	return nil
}

// PriceSeries holds the daily closing prices of one security, in the
// currency its exchange quotes it in. Dates are strictly increasing with
// no duplicates (enforced by date.Series). Once fetched, a series is
// treated as immutable by every computation: derived series are always
// new values.
type PriceSeries struct {
	ticker   string
	currency string
	prices   date.Series[float64]
}

// NewPriceSeries returns an empty price series for a ticker quoted in
// the given currency.
func NewPriceSeries(ticker, currency string) *PriceSeries {
	return &PriceSeries{ticker: ticker, currency: currency}
}

// Ticker returns the security's symbol.
func (s *PriceSeries) Ticker() string { return s.ticker }

// Currency returns the currency the prices are expressed in.
func (s *PriceSeries) Currency() string { return s.currency }

// Append records a closing price. An existing price on the same date is
// overwritten, giving priority to the latest fetch.
func (s *PriceSeries) Append(on date.Date, close float64) *PriceSeries {
	s.prices.Append(on, close)
	return s
}

// Len returns the number of observations.
func (s *PriceSeries) Len() int { return s.prices.Len() }

// Prices exposes the underlying date-indexed series.
func (s *PriceSeries) Prices() *date.Series[float64] { return &s.prices }

// AsOf returns the price on that date, or the last one before it.
func (s *PriceSeries) AsOf(on date.Date) (float64, bool) { return s.prices.AsOf(on) }

// First returns the first observation of the series.
func (s *PriceSeries) First() (date.Date, float64, bool) { return s.prices.First() }

// Last returns the last observation of the series.
func (s *PriceSeries) Last() (date.Date, float64, bool) { return s.prices.Last() }
