package komorebi

import (
	"sort"

	"github.com/komorebi/invest55/date"
)

// GroupStats aggregates the performance of holdings sharing one label,
// a sector or a country, over a period.
type GroupStats struct {
	Label  string
	Count  int
	Weight Percent // share of the portfolio allocation
	Mean   Percent // average of member performances
	Min    Percent
	Max    Percent
}

// Breakdown holds the sector and country views of the portfolio over a
// period, each sorted by descending weight then label.
type Breakdown struct {
	Range     date.Range
	BySector  []GroupStats
	ByCountry []GroupStats
}

// BreakdownReport groups per-holding performance by sector and country,
// the way the dashboard's allocation charts and performance tables do.
// Holdings without a price at either end of the period are left out of
// the performance aggregates but still count toward weights. Holdings
// with no reference record fall in the "Unknown" group.
func (p *Portfolio) BreakdownReport(startDate, endDate date.Date) (*Breakdown, []string, error) {
	aligned, warnings := p.Aligned()
	alloc := p.Allocation()

	type accumulator struct {
		count        int
		weight       float64
		performances []float64
	}
	bySector := make(map[string]*accumulator)
	byCountry := make(map[string]*accumulator)

	group := func(m map[string]*accumulator, label string) *accumulator {
		if label == "" {
			label = "Unknown"
		}
		acc, ok := m[label]
		if !ok {
			acc = &accumulator{}
			m[label] = acc
		}
		return acc
	}

	for _, ticker := range p.Reference.Tickers() {
		company, _ := p.Reference.Get(ticker)
		accs := []*accumulator{
			group(bySector, company.Sector),
			group(byCountry, company.Country),
		}

		perf, hasPerf := 0.0, false
		if p0, ok := aligned.On(ticker, startDate); ok && p0 != 0 {
			if p1, ok := aligned.On(ticker, endDate); ok {
				perf, hasPerf = 100*(p1/p0-1), true
			}
		}
		for _, acc := range accs {
			acc.count++
			acc.weight += alloc.Weight(ticker)
			if hasPerf {
				acc.performances = append(acc.performances, perf)
			}
		}
	}

	collect := func(m map[string]*accumulator) []GroupStats {
		out := make([]GroupStats, 0, len(m))
		for label, acc := range m {
			g := GroupStats{Label: label, Count: acc.count, Weight: Percent(100 * acc.weight)}
			if n := len(acc.performances); n > 0 {
				min, max, sum := acc.performances[0], acc.performances[0], 0.0
				for _, v := range acc.performances {
					sum += v
					if v < min {
						min = v
					}
					if v > max {
						max = v
					}
				}
				g.Mean, g.Min, g.Max = Percent(sum/float64(n)), Percent(min), Percent(max)
			}
			out = append(out, g)
		}
		sort.Slice(out, func(i, j int) bool {
			if out[i].Weight != out[j].Weight {
				return out[i].Weight > out[j].Weight
			}
			return out[i].Label < out[j].Label
		})
		return out
	}

	return &Breakdown{
		Range:     date.NewRange(startDate, endDate),
		BySector:  collect(bySector),
		ByCountry: collect(byCountry),
	}, warnings, nil
}
