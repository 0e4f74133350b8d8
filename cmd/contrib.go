package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/komorebi/invest55/date"
	"github.com/komorebi/invest55/renderer"
	"github.com/google/subcommands"
)

type contribCmd struct {
	from     string
	to       string
	notional float64
}

func (*contribCmd) Name() string     { return "contrib" }
func (*contribCmd) Synopsis() string { return "attribute the portfolio return to individual holdings" }
func (*contribCmd) Usage() string {
	return `k55 contrib [-from <date>] [-to <date>] [-notional <amount>]

  Splits the portfolio's gain or loss over the period between holdings,
  ranked by absolute contribution.
`
}

func (c *contribCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Start of the period (defaults to inception)")
	f.StringVar(&c.to, "to", "", "End of the period (defaults to the last trading day on record)")
	f.Float64Var(&c.notional, "notional", 1000000, "Amount invested, in the reporting currency")
}

func (c *contribCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	contributions, warnings, err := p.Contributions(c.notional, from, to)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ContributorsMarkdown(contributions, date.NewRange(from, to)))
	return subcommands.ExitSuccess
}
