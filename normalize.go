package komorebi

import (
	"fmt"

	"github.com/komorebi/invest55/date"
)

// Normalize re-expresses a price series in the target currency.
//
// When the series already trades in the target currency it is returned
// unchanged: the identity conversion, bit-for-bit. Otherwise every
// close is multiplied by the exchange rate observed on the same date,
// carrying the last known rate forward when the FX calendar has a gap
// (FX markets close on weekends while some exchanges do not, and vice
// versa).
//
// rates must quote the series' currency in the target currency, e.g. a
// USD series normalized to EUR needs the USD→EUR rate. Normalize is a
// pure function: it never mutates its inputs.
func Normalize(s *PriceSeries, target string, rates *date.Series[float64]) (*PriceSeries, error) {
	if s.Currency() == target {
		return s, nil
	}
	if err := ValidateCurrency(target); err != nil {
		return nil, err
	}

	out := NewPriceSeries(s.Ticker(), target)
	for on, close := range s.Prices().Values() {
		rate, ok := rates.AsOf(on)
		if !ok {
			// No rate on or before the first date that needs one:
			// forward-fill cannot reach backward in time.
			return nil, fmt.Errorf("converting %s from %s to %s on %s: %w",
				s.Ticker(), s.Currency(), target, on, ErrMissingRate)
		}
		out.Append(on, close*rate)
	}
	return out, nil
}
