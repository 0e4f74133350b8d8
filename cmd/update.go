package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	komorebi "github.com/komorebi/invest55"
	"github.com/komorebi/invest55/date"
	"github.com/google/subcommands"
)

type updateCmd struct {
	intraday bool
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "fetch prices and exchange rates from eodhd.com"
}
func (*updateCmd) Usage() string {
	return `k55 update [-intraday]

  Fetches daily adjusted closes for every company and benchmark index,
  plus the exchange rates into the reporting currency, and stores them
  in the market data folder.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.intraday, "intraday", false, "top up stale exchange rates with the latest intraday quote")
}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		return usageError("no arguments expected")
	}

	market, err := DecodeMarket()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	ref, err := komorebi.LoadReference(*companiesFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	inception, err := Inception()
	if err != nil {
		return usageError("invalid inception date: %v", err)
	}

	tickers := append(ref.Tickers(), Benchmarks()...)
	r := date.NewRange(inception, date.Today())

	source := &komorebi.EODHD{}
	warnings := komorebi.FetchPrices(ctx, source, market, tickers, r)
	warnings = append(warnings, komorebi.FetchRates(ctx, source, market, *baseCurrency, r)...)
	for _, w := range warnings {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}

	if c.intraday {
		for _, pair := range komorebi.TopUpRates(market, *baseCurrency) {
			fmt.Println("topped up", pair, "with the latest intraday rate")
		}
	}

	if err := EncodeMarket(market); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated %d securities in %s\n", len(tickers), *marketDataPath)
	return subcommands.ExitSuccess
}
