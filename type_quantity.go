package komorebi

import "github.com/shopspring/decimal"

// Quantity is a dimensionless decimal count, typically a number of
// shares. Fractional quantities are allowed: the simulation buys exact
// fractions of a share so that the invested amount is exact.
type Quantity struct {
	value decimal.Decimal
}

// Q returns the quantity for a float value.
func Q(value float64) Quantity { return Quantity{value: decimal.NewFromFloat(value)} }

func (q Quantity) Equal(p Quantity) bool    { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool { return q.value.LessThan(p.value) }
func (q Quantity) IsZero() bool             { return q.value.IsZero() }
func (q Quantity) Add(p Quantity) Quantity  { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity  { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Mul(p Quantity) Quantity  { return Quantity{value: q.value.Mul(p.value)} }

// AsFloat returns the quantity as a float64.
func (q Quantity) AsFloat() float64 { return q.value.InexactFloat64() }

func (q Quantity) String() string { return q.value.String() }
