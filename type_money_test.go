package komorebi

import (
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	if got := EUR(10.50).Add(EUR(4.50)); !got.Equal(EUR(15)) {
		t.Errorf("10.50 + 4.50 = %s, want %s", got, EUR(15))
	}
	if got := EUR(10).Sub(EUR(4)); !got.Equal(EUR(6)) {
		t.Errorf("10 - 4 = %s, want %s", got, EUR(6))
	}
	if got := EUR(10).Mul(Q(3)); !got.Equal(EUR(30)) {
		t.Errorf("10 * 3 = %s, want %s", got, EUR(30))
	}
	if got := EUR(100).DivPrice(EUR(40)); !got.Equal(Q(2.5)) {
		t.Errorf("100 / 40 = %s units, want 2.5", got)
	}
}

func TestMoneyWeakCurrency(t *testing.T) {
	// A zero Money with no currency set combines with anything.
	var zero Money
	if got := zero.Add(EUR(5)); !got.Equal(EUR(5)) || got.Currency() != "EUR" {
		t.Errorf("zero + EUR 5 = %s", got)
	}
}

func TestMoneyCurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding EUR and USD must panic, mixed-currency sums are always a bug")
		}
	}()
	EUR(1).Add(USD(1))
}

func TestMoneyString(t *testing.T) {
	testCases := []struct {
		name string
		m    Money
		want string
	}{
		{"Euro", EUR(1234.5), "€1,234.50"},
		{"Dollar", USD(99), "$99.00"},
		{"Negative", EUR(-12.34), "-€12.34"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSignedStrings(t *testing.T) {
	if got := EUR(0).SignedString(); got != "-" {
		t.Errorf("zero money SignedString() = %q, want %q", got, "-")
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("zero percent SignedString() = %q, want %q", got, "-")
	}
	if got := Percent(3.2).SignedString(); got != "+3.20%" {
		t.Errorf("SignedString() = %q, want +3.20%%", got)
	}
}
