package komorebi

import (
	"fmt"
	"math"

	"github.com/komorebi/invest55/date"
)

// ComparisonRow is one line of a performance comparison: the portfolio
// or an index, valued on the same notional over the same period.
type ComparisonRow struct {
	Label  string
	Start  Money
	Final  Money
	Return Percent
}

// Milestone is one sampled date of the comparison history, holding the
// value of every row in the same order as Comparison.Rows.
type Milestone struct {
	Date   date.Date
	Values []Money
}

// Comparison puts the portfolio and a set of benchmark indices side by
// side, all rescaled to the same starting notional. History samples the
// series at each month end and on the final date.
type Comparison struct {
	Range    date.Range
	Currency string
	Rows     []ComparisonRow
	History  []Milestone
}

// Compare values the portfolio and each benchmark on notional at
// startDate and reports where each stands today. Benchmarks without
// market data are skipped with a warning.
func (p *Portfolio) Compare(benchmarks []string, notional float64, startDate date.Date) (*Comparison, []string, error) {
	valuation, warnings, err := p.Valuation(notional, startDate)
	if err != nil {
		return nil, warnings, err
	}

	row := func(label string, s *ValuationSeries) ComparisonRow {
		start, final := s.Start(), s.Final()
		r := ComparisonRow{
			Label: label,
			Start: M(start.Value, s.Currency),
			Final: M(final.Value, s.Currency),
		}
		if start.Value != 0 {
			r.Return = Percent(100 * (final.Value/start.Value - 1))
		}
		return r
	}

	c := &Comparison{
		Range:    date.NewRange(startDate, valuation.Final().Date),
		Currency: p.Base,
		Rows:     []ComparisonRow{row("Portfolio", valuation)},
	}
	all := []*ValuationSeries{valuation}
	for _, symbol := range benchmarks {
		series, err := p.Benchmark(symbol, notional, startDate)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("benchmark %s skipped: %v", symbol, err))
			continue
		}
		c.Rows = append(c.Rows, row(symbol, series))
		all = append(all, series)
	}
	c.History = milestones(all, p.Base)
	return c, warnings, nil
}

// milestones samples every series at each month end of the first one,
// plus its final date. The first series drives the sampling, the others
// are read as-of each sampled date.
func milestones(all []*ValuationSeries, currency string) []Milestone {
	lead := all[0]
	var history []Milestone
	for i, pt := range lead.Points {
		last := i == len(lead.Points)-1
		monthEnd := !last && lead.Points[i+1].Date.Month() != pt.Date.Month()
		if !last && !monthEnd {
			continue
		}
		m := Milestone{Date: pt.Date, Values: make([]Money, 0, len(all))}
		for _, s := range all {
			v, _ := s.AsOf(pt.Date)
			m.Values = append(m.Values, M(v, currency))
		}
		history = append(history, m)
	}
	return history
}

// Simulation summarizes a valuation series the way a backtest report
// does: final value, total and annualized return, drawdown and the
// best and worst single days.
type Simulation struct {
	Range      date.Range
	Currency   string
	Invested   Money
	Final      Money
	Return     Percent
	Annualized Percent

	// MaxDrawdown is the deepest peak-to-trough loss, as a negative
	// percentage of the peak. Zero for a series that never declines.
	MaxDrawdown Percent

	BestDay        date.Date
	BestDayReturn  Percent
	WorstDay       date.Date
	WorstDayReturn Percent
}

// Simulate computes the metrics of a valuation series. The series must
// have at least one point.
func Simulate(s *ValuationSeries) *Simulation {
	start, final := s.Start(), s.Final()
	sim := &Simulation{
		Range:    date.NewRange(start.Date, final.Date),
		Currency: s.Currency,
		Invested: M(start.Value, s.Currency),
		Final:    M(final.Value, s.Currency),
	}
	if start.Value != 0 {
		r := final.Value/start.Value - 1
		sim.Return = Percent(100 * r)
		if days := final.Date.Sub(start.Date); days > 0 {
			years := float64(days) / 365.25
			sim.Annualized = Percent(100 * (math.Pow(1+r, 1/years) - 1))
		}
	}

	peak := start.Value
	for i, pt := range s.Points {
		if pt.Value > peak {
			peak = pt.Value
		}
		if peak != 0 {
			if dd := Percent(100 * (pt.Value/peak - 1)); dd < sim.MaxDrawdown {
				sim.MaxDrawdown = dd
			}
		}
		if i == 0 {
			continue
		}
		prev := s.Points[i-1].Value
		if prev == 0 {
			continue
		}
		day := Percent(100 * (pt.Value/prev - 1))
		if sim.BestDay.IsZero() || day > sim.BestDayReturn {
			sim.BestDay, sim.BestDayReturn = pt.Date, day
		}
		if sim.WorstDay.IsZero() || day < sim.WorstDayReturn {
			sim.WorstDay, sim.WorstDayReturn = pt.Date, day
		}
	}
	return sim
}
