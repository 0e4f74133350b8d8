// Package cmd implements the CLI application to track the portfolio.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"strings"

	komorebi "github.com/komorebi/invest55"
	"github.com/komorebi/invest55/date"
	"github.com/google/subcommands"
)

// Register the subcommands. A main package calls Register() and then
// Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// Commands lists every subcommand, for registration and completion.
var Commands = []subcommands.Command{
	&updateCmd{},
	&perfCmd{},
	&simulateCmd{},
	&contribCmd{},
	&breakdownCmd{},
	&quotesCmd{},
	&topicCmd{},
	&assistCmd{},
}

// As a CLI application it has a very short lived lifecycle, so it is ok
// to use global variables.

var (
	marketDataPath = flag.String("market-data", ".marketdata", "Path to the market data folder (JSONL files)")
	companiesFile  = flag.String("companies", "companies.csv", "Path to the companies reference file (CSV)")
	baseCurrency   = flag.String("base", "EUR", "Reporting currency")
	inceptionFlag  = flag.String("inception", "2023-01-05", "Inception date of the simulated investment")
	benchmarksFlag = flag.String("benchmarks", "^FCHI,^GSPC,^IXIC,^STOXX50E", "Comma-separated benchmark index symbols")
)

// DecodeMarket loads the market data folder. A missing folder is an
// empty market, not an error.
func DecodeMarket() (m *komorebi.MarketData, err error) {
	m, err = komorebi.DecodeMarketData(*marketDataPath)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, market data does not exist, starting from an empty market")
		m, err = komorebi.NewMarketData(), nil
	}
	return
}

// EncodeMarket writes the market data back to the folder.
func EncodeMarket(m *komorebi.MarketData) error {
	return komorebi.EncodeMarketData(*marketDataPath, m)
}

// LoadPortfolio assembles the portfolio from the market data and the
// companies reference file.
func LoadPortfolio() (*komorebi.Portfolio, error) {
	market, err := DecodeMarket()
	if err != nil {
		return nil, err
	}
	ref, err := komorebi.LoadReference(*companiesFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load companies file %q: %w", *companiesFile, err)
	}
	return komorebi.NewPortfolio(market, ref, *baseCurrency)
}

// Inception parses the inception date flag.
func Inception() (date.Date, error) {
	return date.Parse(*inceptionFlag)
}

// Benchmarks returns the benchmark symbols from the flag.
func Benchmarks() []string {
	var symbols []string
	for _, s := range strings.Split(*benchmarksFlag, ",") {
		if s = strings.TrimSpace(s); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

// parseDate parses a date flag, returning fallback when empty.
func parseDate(value string, fallback date.Date) (date.Date, error) {
	if value == "" {
		return fallback, nil
	}
	return date.Parse(value)
}

// period resolves the -from and -to flags of a report command. The
// start defaults to inception, the end to the last trading day on the
// aligned calendar.
func period(p *komorebi.Portfolio, fromFlag, toFlag string, inception date.Date) (from, to date.Date, status subcommands.ExitStatus) {
	from, err := parseDate(fromFlag, inception)
	if err != nil {
		return from, to, usageError("invalid -from date: %v", err)
	}
	if toFlag == "" {
		aligned, _ := p.Aligned()
		axis := aligned.Axis()
		if len(axis) == 0 {
			fmt.Println("no market data on record, run update first")
			return from, to, subcommands.ExitFailure
		}
		return from, axis[len(axis)-1], subcommands.ExitSuccess
	}
	to, err = date.Parse(toFlag)
	if err != nil {
		return from, to, usageError("invalid -to date: %v", err)
	}
	return from, to, subcommands.ExitSuccess
}

// usageError prints a message and returns the usage exit status.
func usageError(format string, args ...interface{}) subcommands.ExitStatus {
	fmt.Printf(format+"\n", args...)
	return subcommands.ExitUsageError
}
