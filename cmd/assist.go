package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	komorebi "github.com/komorebi/invest55"
	"github.com/komorebi/invest55/agent"
	"github.com/komorebi/invest55/date"
	"github.com/komorebi/invest55/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the analyst" }
func (*assistCmd) Usage() string {
	return `k55 assist [<question>]

  Starts an interactive chat with an analyst seeded with the current
  portfolio reports. Requires a Gemini API key in the environment.
`
}

func (*assistCmd) SetFlags(*flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
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

	// Seed the analyst with whichever reports the data can support.
	var reports []string
	if comparison, _, err := p.Compare(Benchmarks(), 1000000, inception); err == nil {
		reports = append(reports, renderer.ComparisonMarkdown(comparison))
	}
	if valuation, _, err := p.Valuation(1000000, inception); err == nil {
		reports = append(reports, renderer.SimulationMarkdown(komorebi.Simulate(valuation)))
		end := valuation.Final().Date
		if contributions, _, err := p.Contributions(1000000, inception, end); err == nil {
			reports = append(reports, renderer.ContributorsMarkdown(contributions, date.NewRange(inception, end)))
		}
	}
	if quotes := p.QuoteSummaries(); len(quotes) > 0 {
		reports = append(reports, renderer.QuotesMarkdown(quotes))
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(reports...))
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Agent failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
