package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/komorebi/invest55/renderer"
	"github.com/google/subcommands"
)

type breakdownCmd struct {
	from string
	to   string
}

func (*breakdownCmd) Name() string     { return "breakdown" }
func (*breakdownCmd) Synopsis() string { return "aggregate holding performance by sector and country" }
func (*breakdownCmd) Usage() string {
	return `k55 breakdown [-from <date>] [-to <date>]

  Groups the holdings by sector and country and aggregates their
  performance over the period.
`
}

func (c *breakdownCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the period (defaults to inception)")
	f.StringVar(&c.to, "to", "", "End of the period (defaults to the last trading day on record)")
}

func (c *breakdownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	from, to, status := period(p, c.from, c.to, inception)
	if status != subcommands.ExitSuccess {
		return status
	}

	report, warnings, err := p.BreakdownReport(from, to)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BreakdownMarkdown(report))
	return subcommands.ExitSuccess
}
