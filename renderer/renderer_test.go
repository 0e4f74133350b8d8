package renderer

import (
	"strings"
	"testing"

	komorebi "github.com/komorebi/invest55"
	"github.com/komorebi/invest55/date"
)

func period() date.Range {
	return date.NewRange(date.New(2023, 1, 5), date.New(2023, 6, 30))
}

func TestComparisonMarkdown(t *testing.T) {
	c := &komorebi.Comparison{
		Range:    period(),
		Currency: "EUR",
		Rows: []komorebi.ComparisonRow{
			{Label: "Portfolio", Start: komorebi.M(1000000, "EUR"), Final: komorebi.M(1080000, "EUR"), Return: 8},
			{Label: "^FCHI", Start: komorebi.M(1000000, "EUR"), Final: komorebi.M(1050000, "EUR"), Return: 5},
		},
		History: []komorebi.Milestone{
			{Date: date.New(2023, 1, 31), Values: []komorebi.Money{komorebi.M(1010000, "EUR"), komorebi.M(1005000, "EUR")}},
			{Date: date.New(2023, 6, 30), Values: []komorebi.Money{komorebi.M(1080000, "EUR"), komorebi.M(1050000, "EUR")}},
		},
	}
	got := ComparisonMarkdown(c)
	for _, want := range []string{"Portfolio", "^FCHI", "+8.00%", "+5.00%", "| Return |", "Month by month", "2023-01-31"} {
		if !strings.Contains(got, want) {
			t.Errorf("ComparisonMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestContributorsMarkdownSplitsWinnersAndLosers(t *testing.T) {
	contributions := []komorebi.Contribution{
		{Ticker: "GOOGL", Absolute: komorebi.M(50, "EUR"), Relative: 100, RelativeKnown: true, Performance: 10},
		{Ticker: "ERF.PA", Absolute: komorebi.M(-50, "EUR"), Relative: -100, RelativeKnown: true, Performance: -10},
	}
	got := ContributorsMarkdown(contributions, period())
	winners := strings.Index(got, "Winners")
	losers := strings.Index(got, "Losers")
	if winners < 0 || losers < 0 || winners > losers {
		t.Fatalf("expected Winners section before Losers section in:\n%s", got)
	}
	if !strings.Contains(got, "GOOGL") || !strings.Contains(got, "ERF.PA") {
		t.Errorf("missing tickers in:\n%s", got)
	}
}

func TestContributorsMarkdownNotApplicableRelative(t *testing.T) {
	contributions := []komorebi.Contribution{
		{Ticker: "GOOGL", Absolute: komorebi.M(50, "EUR"), Performance: 10},
	}
	got := ContributorsMarkdown(contributions, period())
	if !strings.Contains(got, "n/a") {
		t.Errorf("expected n/a for unknown relative contribution in:\n%s", got)
	}
}

func TestBreakdownMarkdown(t *testing.T) {
	b := &komorebi.Breakdown{
		Range: period(),
		BySector: []komorebi.GroupStats{
			{Label: "Technology", Count: 2, Weight: 40, Mean: 5, Min: 2, Max: 8},
		},
		ByCountry: []komorebi.GroupStats{
			{Label: "France", Count: 3, Weight: 60, Mean: -1, Min: -4, Max: 2},
		},
	}
	got := BreakdownMarkdown(b)
	for _, want := range []string{"By Sector", "By Country", "Technology", "France", "60.00%"} {
		if !strings.Contains(got, want) {
			t.Errorf("BreakdownMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestQuotesMarkdown(t *testing.T) {
	quotes := []komorebi.QuoteSummary{
		{
			Ticker:        "ROG.SW",
			Name:          "Roche Holding",
			Currency:      "CHF",
			Date:          date.New(2023, 6, 30),
			Price:         komorebi.M(280, "CHF"),
			Change:        komorebi.M(2, "CHF"),
			ChangePercent: 0.72,
		},
	}
	got := QuotesMarkdown(quotes)
	for _, want := range []string{"ROG.SW", "Roche Holding", "2023-06-30", "+0.72%"} {
		if !strings.Contains(got, want) {
			t.Errorf("QuotesMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestSimulationMarkdown(t *testing.T) {
	s := &komorebi.Simulation{
		Range:          period(),
		Currency:       "EUR",
		Invested:       komorebi.M(1000000, "EUR"),
		Final:          komorebi.M(1100000, "EUR"),
		Return:         10,
		Annualized:     21.5,
		MaxDrawdown:    -6.3,
		BestDay:        date.New(2023, 3, 16),
		BestDayReturn:  2.1,
		WorstDay:       date.New(2023, 3, 13),
		WorstDayReturn: -2.8,
	}
	got := SimulationMarkdown(s)
	for _, want := range []string{"Total Return", "+10.00%", "Max Drawdown", "-6.30%", "Best Day (2023-03-16)"} {
		if !strings.Contains(got, want) {
			t.Errorf("SimulationMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
