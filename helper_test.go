package komorebi

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/komorebi/invest55/date"
)

// EUR is a helper for tests to create euro money from const.
func EUR(v float64) Money { return M(v, "EUR") }

// USD is a helper for tests to create usd money from const.
func USD(v float64) Money { return M(v, "USD") }

// day is a helper for tests to build January 2023 dates.
func day(d int) date.Date { return date.New(2023, 1, d) }

// prices builds a price series from alternating day-of-January and
// close pairs: prices("X", "EUR", 2, 100, 3, 101).
func prices(ticker, currency string, pairs ...float64) *PriceSeries {
	s := NewPriceSeries(ticker, currency)
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Append(day(int(pairs[i])), pairs[i+1])
	}
	return s
}

// rateSeries builds an exchange rate series the same way.
func rateSeries(pairs ...float64) *date.Series[float64] {
	s := &date.Series[float64]{}
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Append(day(int(pairs[i])), pairs[i+1])
	}
	return s
}

// close enough for float comparisons accumulated over arithmetic.
func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

// readFile reads one file of an encoded market data folder.
func readFile(t *testing.T, dir, name string) (string, error) {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, name))
	return string(b), err
}
