package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/komorebi/invest55/renderer"
	"github.com/google/subcommands"
)

type perfCmd struct {
	from     string
	notional float64
}

func (*perfCmd) Name() string     { return "perf" }
func (*perfCmd) Synopsis() string { return "compare the portfolio against benchmark indices" }
func (*perfCmd) Usage() string {
	return `k55 perf [-from <date>] [-notional <amount>]

  Invests the notional equally across all holdings at the start date and
  compares where it stands against the same notional in each benchmark.
`
}

func (c *perfCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date of the simulation (defaults to inception)")
	f.Float64Var(&c.notional, "notional", 1000000, "Amount to invest, in the reporting currency")
}

func (c *perfCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return usageError("no arguments expected")
	}
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	inception, err := Inception()
	if err != nil {
		return usageError("invalid inception date: %v", err)
	}
	from, err := parseDate(c.from, inception)
	if err != nil {
		return usageError("invalid -from date: %v", err)
	}

	comparison, warnings, err := p.Compare(Benchmarks(), c.notional, from)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ComparisonMarkdown(comparison))
	return subcommands.ExitSuccess
}
