package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	komorebi "github.com/komorebi/invest55"
	"github.com/komorebi/invest55/renderer"
	"github.com/google/subcommands"
)

type simulateCmd struct {
	from     string
	notional float64
}

func (*simulateCmd) Name() string     { return "simulate" }
func (*simulateCmd) Synopsis() string { return "compute the metrics of the investment simulation" }
func (*simulateCmd) Usage() string {
	return `k55 simulate [-from <date>] [-notional <amount>]

  Runs the equal-weight investment simulation and reports final value,
  returns, drawdown, and the best and worst days.
`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start date of the simulation (defaults to inception)")
	f.Float64Var(&c.notional, "notional", 1000000, "Amount to invest, in the reporting currency")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	valuation, warnings, err := p.Valuation(c.notional, from)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SimulationMarkdown(komorebi.Simulate(valuation)))
	return subcommands.ExitSuccess
}
