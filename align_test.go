package komorebi

import (
	"slices"
	"testing"

	"github.com/komorebi/invest55/date"
)

func TestAlignUnionAxis(t *testing.T) {
	set := Align(map[string]*PriceSeries{
		"A": prices("A", "EUR", 2, 10, 4, 11),
		"B": prices("B", "EUR", 3, 20, 4, 21),
	})

	want := []date.Date{day(2), day(3), day(4)}
	if !slices.Equal(set.Axis(), want) {
		t.Errorf("Axis() = %v, want %v", set.Axis(), want)
	}
	if !slices.Equal(set.Tickers(), []string{"A", "B"}) {
		t.Errorf("Tickers() = %v, want [A B]", set.Tickers())
	}
}

func TestAlignForwardFill(t *testing.T) {
	set := Align(map[string]*PriceSeries{
		"A": prices("A", "EUR", 2, 10, 4, 11),
		"B": prices("B", "EUR", 3, 20),
	})

	// A has no close on day 3: day 2 carries forward.
	if v, ok := set.On("A", day(3)); !ok || v != 10 {
		t.Errorf("On(A, day 3) = %v, %v, want 10 carried forward", v, ok)
	}
	// B has no close on day 4: day 3 carries forward.
	if v, ok := set.On("B", day(4)); !ok || v != 20 {
		t.Errorf("On(B, day 4) = %v, %v, want 20 carried forward", v, ok)
	}
}

func TestAlignLeadingDatesStayUndefined(t *testing.T) {
	set := Align(map[string]*PriceSeries{
		"A": prices("A", "EUR", 2, 10),
		"B": prices("B", "EUR", 5, 20),
	})

	// Days before B's first observation must read as undefined, never
	// as zero: a zero would fake a total collapse of the holding.
	for _, d := range []date.Date{day(2), day(3), day(4)} {
		if v, ok := set.On("B", d); ok {
			t.Errorf("On(B, %s) = %v, defined, want undefined", d, v)
		}
	}
	if _, ok := set.On("B", day(5)); !ok {
		t.Error("On(B, day 5) undefined, want B's first observation")
	}
}

func TestAlignOffAxis(t *testing.T) {
	set := Align(map[string]*PriceSeries{
		"A": prices("A", "EUR", 2, 10, 4, 11),
	})
	if _, ok := set.On("A", day(3)); ok {
		t.Error("On() must report false for a date off the axis")
	}
}

func TestAlignDeterministic(t *testing.T) {
	build := func() *AlignedSet {
		return Align(map[string]*PriceSeries{
			"B": prices("B", "EUR", 3, 20),
			"A": prices("A", "EUR", 2, 10),
			"C": prices("C", "EUR", 4, 30),
		})
	}
	a, b := build(), build()
	if !slices.Equal(a.Tickers(), b.Tickers()) || !slices.Equal(a.Axis(), b.Axis()) {
		t.Error("identical inputs produced different alignments")
	}
	if !slices.Equal(a.Tickers(), []string{"A", "B", "C"}) {
		t.Errorf("Tickers() = %v, want sorted [A B C]", a.Tickers())
	}
}
