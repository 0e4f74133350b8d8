package komorebi

import (
	"errors"
	"io/fs"
	"slices"
	"testing"
)

func TestDeclare(t *testing.T) {
	m := NewMarketData()

	s, err := m.Declare("GOOGL", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if !m.Has("GOOGL") {
		t.Error("Has(GOOGL) = false after Declare")
	}

	// Declaring again with the same currency returns the same series.
	again, err := m.Declare("GOOGL", "USD")
	if err != nil {
		t.Fatal(err)
	}
	if again != s {
		t.Error("re-declaring must return the existing series")
	}

	// Same ticker, different currency is a conflict.
	if _, err := m.Declare("GOOGL", "EUR"); err == nil {
		t.Error("declaring GOOGL in EUR after USD: expected a conflict error")
	}

	if _, err := m.Declare("bad ticker", "USD"); err == nil {
		t.Error("invalid ticker: expected an error")
	}
	if _, err := m.Declare("GD", "dollars"); err == nil {
		t.Error("invalid currency: expected an error")
	}
}

func TestConvert(t *testing.T) {
	m := NewMarketData()
	m.Rates("USD", "EUR").Append(day(2), 0.9)

	// Identity conversion needs no rate.
	if v, err := m.Convert(100, "EUR", "EUR", day(2)); err != nil || v != 100 {
		t.Errorf("identity Convert = %v, %v", v, err)
	}

	if v, err := m.Convert(100, "USD", "EUR", day(4)); err != nil || !approx(v, 90) {
		t.Errorf("Convert(100 USD) = %v, %v, want 90 with the day 2 rate carried forward", v, err)
	}

	if _, err := m.Convert(100, "USD", "EUR", day(1)); !errors.Is(err, ErrMissingRate) {
		t.Errorf("Convert before the first rate: error = %v, want ErrMissingRate", err)
	}
	if _, err := m.Convert(100, "CHF", "EUR", day(2)); !errors.Is(err, ErrMissingRate) {
		t.Errorf("Convert with no rate series: error = %v, want ErrMissingRate", err)
	}
}

func TestMarketDataRoundTrip(t *testing.T) {
	m := NewMarketData()
	s, _ := m.Declare("ERF.PA", "EUR")
	s.Append(day(2), 67.84).Append(day(3), 68.10)
	idx, _ := m.Declare("^FCHI", "EUR")
	idx.Append(day(2), 6869.14)
	m.Rates("USD", "EUR").Append(day(2), 0.9468)

	dir := t.TempDir()
	if err := EncodeMarketData(dir, m); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeMarketData(dir)
	if err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(got.Tickers(), []string{"ERF.PA", "^FCHI"}) {
		t.Errorf("Tickers() = %v", got.Tickers())
	}
	erf := got.Security("ERF.PA")
	if erf.Currency() != "EUR" || erf.Len() != 2 {
		t.Fatalf("ERF.PA decoded as %s with %d prices", erf.Currency(), erf.Len())
	}
	if v, _ := erf.AsOf(day(3)); v != 68.10 {
		t.Errorf("ERF.PA close day 3 = %v, want 68.10", v)
	}
	if !got.HasRates("USD", "EUR") {
		t.Fatal("USD→EUR rates lost in the round trip")
	}
	if v, _ := got.Rates("USD", "EUR").Get(day(2)); v != 0.9468 {
		t.Errorf("rate day 2 = %v, want 0.9468", v)
	}
}

func TestEncodeMarketDataDeterministic(t *testing.T) {
	build := func() *MarketData {
		m := NewMarketData()
		for _, ticker := range []string{"GD", "GOOGL", "ERF.PA"} {
			s, _ := m.Declare(ticker, "USD")
			s.Append(day(2), 100)
		}
		return m
	}

	dir1, dir2 := t.TempDir(), t.TempDir()
	if err := EncodeMarketData(dir1, build()); err != nil {
		t.Fatal(err)
	}
	if err := EncodeMarketData(dir2, build()); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"securities.jsonl", "prices.jsonl", "rates.jsonl"} {
		a, err1 := readFile(t, dir1, name)
		b, err2 := readFile(t, dir2, name)
		if err1 != nil || err2 != nil {
			t.Fatalf("reading %s: %v, %v", name, err1, err2)
		}
		if a != b {
			t.Errorf("%s differs between two identical encodes:\n%s\nvs\n%s", name, a, b)
		}
	}
}

func TestDecodeMarketDataMissingDir(t *testing.T) {
	_, err := DecodeMarketData(t.TempDir() + "/does-not-exist")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v, want fs.ErrNotExist so callers can start empty", err)
	}
}
