package komorebi

import (
	"errors"
	"testing"
)

func TestNormalizeIdentity(t *testing.T) {
	s := prices("ERF.PA", "EUR", 2, 100, 3, 101)

	got, err := Normalize(s, "EUR", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Error("normalizing into the native currency must return the series unchanged, not a copy")
	}
}

func TestNormalizeConversion(t *testing.T) {
	s := prices("GOOGL", "USD", 2, 100, 3, 110)
	rates := rateSeries(2, 0.9)

	got, err := Normalize(s, "EUR", rates)
	if err != nil {
		t.Fatal(err)
	}
	if got.Currency() != "EUR" {
		t.Errorf("Currency() = %q, want EUR", got.Currency())
	}
	if v, _ := got.AsOf(day(2)); !approx(v, 90) {
		t.Errorf("converted close day 2 = %v, want 90", v)
	}
	// day 3 has no rate observation: the day 2 rate carries forward.
	if v, _ := got.AsOf(day(3)); !approx(v, 99) {
		t.Errorf("converted close day 3 = %v, want 99", v)
	}
}

func TestNormalizeMissingRate(t *testing.T) {
	s := prices("GOOGL", "USD", 2, 100)
	rates := rateSeries(5, 0.9) // first rate after the first price

	_, err := Normalize(s, "EUR", rates)
	if !errors.Is(err, ErrMissingRate) {
		t.Errorf("Normalize() error = %v, want ErrMissingRate", err)
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	s := prices("GOOGL", "USD", 2, 100)
	rates := rateSeries(2, 0.9)

	if _, err := Normalize(s, "EUR", rates); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.AsOf(day(2)); v != 100 {
		t.Errorf("input series mutated: close = %v, want 100", v)
	}
	if s.Currency() != "USD" {
		t.Errorf("input series mutated: currency = %q, want USD", s.Currency())
	}
}
