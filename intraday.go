package komorebi

import (
	"fmt"
	"log"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/komorebi/invest55/date"
)

// Daily FX closes lag a day behind. For an up-to-date valuation the
// rate series are topped up with the latest intraday quote from
// Lang & Schwarz, which publishes its chart data as plain JSON.

// intradayInstruments maps a currency pair (quote currency per one unit
// of the first) to its ls-tc.de instrument id.
var intradayInstruments = map[string]int{
	"EURUSD": 349938,
	"EURGBP": 349944,
	"EURCHF": 349940,
	"EURJPY": 349945,
}

/*
	{
	    "series": {
	        "intraday": {
	            "data": [
	                [1756624980000, 1.0873],
	                ...
	            ]
	        }
	    }
	}
*/
func intradayRate(pair string) (float64, error) {
	id, ok := intradayInstruments[pair]
	if !ok {
		return math.NaN(), fmt.Errorf("no intraday instrument for pair %s", pair)
	}
	addr := fmt.Sprintf("https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=%d&series=intraday&type=mini", id)
	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("error in wget %q: %w", pair, err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("error parsing %q: %q %w", pair, path, err)
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("error parsing %q: %q not a float: %v", pair, path, jval)
	}
	if val == 0 {
		return math.NaN(), fmt.Errorf("empty intraday quote for %s", pair)
	}
	return val, nil
}

// TopUpRates extends every from→base rate series in the market that is
// stale (last observation before today) with the latest intraday quote.
// Pairs without an intraday instrument are left alone. Returns the
// pairs that were topped up.
func TopUpRates(market *MarketData, base string) []string {
	today := date.Today()
	var topped []string
	for _, from := range market.Currencies() {
		if from == base || !market.HasRates(from, base) {
			continue
		}
		rates := market.Rates(from, base)
		if last, _, ok := rates.Last(); ok && !last.Before(today) {
			continue
		}
		// Instruments are quoted EUR-first; invert when the pair is the
		// other way round.
		var rate float64
		var err error
		if v, e := intradayRate(from + base); e == nil {
			rate, err = v, nil
		} else if v, e := intradayRate(base + from); e == nil {
			rate, err = 1/v, nil
		} else {
			err = e
		}
		if err != nil {
			log.Printf("warning: intraday rate %s%s unavailable: %v", from, base, err)
			continue
		}
		rates.Append(today, rate)
		topped = append(topped, from+base)
	}
	return topped
}
