package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/komorebi/invest55/renderer"
	"github.com/google/subcommands"
)

type quotesCmd struct{}

func (*quotesCmd) Name() string     { return "quotes" }
func (*quotesCmd) Synopsis() string { return "show the latest quote of every holding" }
func (*quotesCmd) Usage() string {
	return `k55 quotes

  Prints the latest stored close of every holding and its move since
  the previous close, in the security's native currency.
`
}

func (*quotesCmd) SetFlags(*flag.FlagSet) {}

func (c *quotesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return usageError("no arguments expected")
	}
	p, err := LoadPortfolio()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}

	quotes := p.QuoteSummaries()
	if len(quotes) == 0 {
		fmt.Println("no market data on record, run update first")
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.QuotesMarkdown(quotes))
	return subcommands.ExitSuccess
}
