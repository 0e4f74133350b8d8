package komorebi

import (
	"strings"
	"testing"

	"github.com/komorebi/invest55/date"
)

func TestSimulateMetrics(t *testing.T) {
	s := &ValuationSeries{
		Currency: "EUR",
		Points: []ValuationPoint{
			{Date: day(2), Value: 1000},
			{Date: day(3), Value: 1100}, // +10%, best day
			{Date: day(4), Value: 990},  // -10%, worst day, drawdown trough
			{Date: day(5), Value: 1050},
		},
	}
	sim := Simulate(s)

	if !sim.Invested.Equal(EUR(1000)) || !sim.Final.Equal(EUR(1050)) {
		t.Errorf("invested %s final %s, want €1000 and €1050", sim.Invested, sim.Final)
	}
	if !sim.Return.Equal(5) {
		t.Errorf("Return = %s, want +5%%", sim.Return)
	}
	// Peak 1100 to trough 990 is -10%.
	if !sim.MaxDrawdown.Equal(-10) {
		t.Errorf("MaxDrawdown = %s, want -10%%", sim.MaxDrawdown)
	}
	if sim.BestDay != day(3) || !sim.BestDayReturn.Equal(10) {
		t.Errorf("best day = %s %s, want day 3 at +10%%", sim.BestDay, sim.BestDayReturn)
	}
	if sim.WorstDay != day(4) || !sim.WorstDayReturn.Equal(-10) {
		t.Errorf("worst day = %s %s, want day 4 at -10%%", sim.WorstDay, sim.WorstDayReturn)
	}
	if sim.Range != date.NewRange(day(2), day(5)) {
		t.Errorf("Range = %s", sim.Range)
	}
}

func TestSimulateFlatSeries(t *testing.T) {
	s := &ValuationSeries{
		Currency: "EUR",
		Points: []ValuationPoint{
			{Date: day(2), Value: 1000},
			{Date: day(3), Value: 1000},
		},
	}
	sim := Simulate(s)
	if !sim.Return.Equal(0) || !sim.MaxDrawdown.Equal(0) {
		t.Errorf("flat series: return %s drawdown %s, want zero", sim.Return, sim.MaxDrawdown)
	}
}

func TestCompare(t *testing.T) {
	p := testPortfolio(t)
	c, warnings, err := p.Compare([]string{"^FCHI", "^GDAXI"}, 900, day(2))
	if err != nil {
		t.Fatal(err)
	}

	// The portfolio row always comes first; the unknown index is
	// skipped with a warning, not an error.
	if len(c.Rows) != 2 {
		t.Fatalf("rows = %v, want portfolio and ^FCHI", c.Rows)
	}
	if c.Rows[0].Label != "Portfolio" || c.Rows[1].Label != "^FCHI" {
		t.Errorf("row labels = [%s %s]", c.Rows[0].Label, c.Rows[1].Label)
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "^GDAXI") {
			found = true
		}
	}
	if !found {
		t.Errorf("no warning mentions ^GDAXI: %v", warnings)
	}

	// Portfolio went 900 → 930 (+3.33%), ^FCHI 4000 → 4100 (+2.5%).
	if !c.Rows[0].Return.Equal(Percent(100.0 * 30 / 900)) {
		t.Errorf("portfolio return = %s, want +3.33%%", c.Rows[0].Return)
	}
	if !c.Rows[1].Return.Equal(2.5) {
		t.Errorf("^FCHI return = %s, want +2.5%%", c.Rows[1].Return)
	}

	// All dates fall within one month, so the history is the single
	// final-date milestone, with one value per row.
	if len(c.History) != 1 {
		t.Fatalf("history = %v, want one milestone", c.History)
	}
	m := c.History[0]
	if m.Date != c.Range.To {
		t.Errorf("milestone date = %s, want %s", m.Date, c.Range.To)
	}
	if len(m.Values) != 2 || !m.Values[0].Equal(EUR(930)) || !m.Values[1].Equal(EUR(922.5)) {
		t.Errorf("milestone values = %v, want €930 and €922.50", m.Values)
	}
}

func TestComparisonHistorySamplesMonthEnds(t *testing.T) {
	jan := &ValuationSeries{Currency: "EUR", Points: []ValuationPoint{
		{Date: date.New(2023, 1, 30), Value: 1000},
		{Date: date.New(2023, 1, 31), Value: 1010},
		{Date: date.New(2023, 2, 1), Value: 1020},
		{Date: date.New(2023, 2, 28), Value: 1030},
		{Date: date.New(2023, 3, 1), Value: 1040},
	}}
	// Sparse second series, read as-of each sampled date.
	idx := &ValuationSeries{Currency: "EUR", Points: []ValuationPoint{
		{Date: date.New(2023, 1, 30), Value: 500},
	}}

	history := milestones([]*ValuationSeries{jan, idx}, "EUR")

	want := []date.Date{date.New(2023, 1, 31), date.New(2023, 2, 28), date.New(2023, 3, 1)}
	if len(history) != len(want) {
		t.Fatalf("history has %d milestones, want %d", len(history), len(want))
	}
	for i, m := range history {
		if m.Date != want[i] {
			t.Errorf("milestone %d on %s, want %s", i, m.Date, want[i])
		}
		if !m.Values[1].Equal(EUR(500)) {
			t.Errorf("sparse series at %s = %s, want carried €500", m.Date, m.Values[1])
		}
	}
	if !history[0].Values[0].Equal(EUR(1010)) || !history[2].Values[0].Equal(EUR(1040)) {
		t.Errorf("lead values = %v", history)
	}
}

func TestValuationSeriesAsOf(t *testing.T) {
	s := &ValuationSeries{Currency: "EUR", Points: []ValuationPoint{
		{Date: day(3), Value: 100},
		{Date: day(5), Value: 120},
	}}
	if _, ok := s.AsOf(day(2)); ok {
		t.Error("AsOf before the first point should report absence")
	}
	if v, ok := s.AsOf(day(4)); !ok || v != 100 {
		t.Errorf("AsOf(day 4) = %v %v, want the carried 100", v, ok)
	}
	if v, _ := s.AsOf(day(9)); v != 120 {
		t.Errorf("AsOf(day 9) = %v, want 120", v)
	}
}
