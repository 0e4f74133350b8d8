package komorebi

import (
	"errors"
	"fmt"
)

// ErrMissingRate reports that a currency conversion was requested but no
// exchange rate exists on or before the first date that needs one.
// Forward-fill cannot reach backward in time, so the conversion is
// impossible and the affected holding is dropped.
var ErrMissingRate = errors.New("no exchange rate available on or before the required date")

// ErrInvalidStartDate reports that a valuation or attribution was
// requested from a date that precedes all available data. This rejects
// the whole request; it is not recoverable by dropping holdings.
var ErrInvalidStartDate = errors.New("start date precedes all available data")

// FetchError wraps a data-source failure for a single ticker or currency
// pair. It is recoverable: the affected holding is dropped and the
// computation continues on the remaining ones.
type FetchError struct {
	Ticker string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching %s: %v", e.Ticker, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
