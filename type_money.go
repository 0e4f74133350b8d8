package komorebi

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents an amount in a specific currency. The amount is kept
// as an exact decimal so that report totals add up; floats only appear
// at the boundary, where prices come in and percentages go out.
type Money struct {
	value decimal.Decimal // in major units
	cur   string
}

// M returns a monetary amount in the given currency.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// Currency returns the ISO code of the money's currency.
func (m Money) Currency() string { return m.cur }

// currency resolves the full go-money currency, never nil.
func (m Money) currency() money.Currency { return *money.New(0, m.cur).Currency() }

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsPositive() bool { return m.value.IsPositive() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }
func (m Money) Neg() Money       { return Money{value: m.value.Neg(), cur: m.cur} }

// Equal reports whether two amounts are the same value in the same
// currency.
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// LessThan compares amounts; currencies are assumed to match.
func (m Money) LessThan(n Money) bool { return m.value.LessThan(n.value) }

// Add returns m+n. Currencies must match; the empty currency is weak and
// adopts the other side's.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }

// Sub returns m-n under the same currency rules as Add.
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

// Mul scales the amount by a quantity (e.g. price * share count).
func (m Money) Mul(q Quantity) Money { return Money{value: m.value.Mul(q.value), cur: m.cur} }

// Div divides the amount by a quantity.
func (m Money) Div(q Quantity) Money { return Money{value: m.value.Div(q.value), cur: m.cur} }

// DivPrice returns how many units of price n the amount m buys.
func (m Money) DivPrice(n Money) Quantity { return Quantity{value: m.value.Div(n.value)} }

func cur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + "!=" + b.cur)
	}
	return a.cur
}

// AsFloat returns the amount as a float64, for ratio computations where
// exactness no longer matters.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// String formats the amount with its currency symbol and conventions,
// e.g. "€1,050,000.00".
func (m Money) String() string {
	c := m.currency()
	shifted := m.value.Shift(int32(c.Fraction))
	return c.Formatter().Format(shifted.IntPart())
}

// SignedString is like String with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
