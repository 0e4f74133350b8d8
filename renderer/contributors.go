package renderer

import (
	"bytes"
	"fmt"

	komorebi "github.com/komorebi/invest55"
	"github.com/komorebi/invest55/date"
	md "github.com/nao1215/markdown"
)

// ContributorsMarkdown renders the attribution report: winners first,
// then losers, each ranked by absolute contribution.
func ContributorsMarkdown(contributions []komorebi.Contribution, r date.Range) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Contributors %s", r))

	var winners, losers []komorebi.Contribution
	for _, c := range contributions {
		if !c.Absolute.IsNegative() {
			winners = append(winners, c)
		} else {
			losers = append(losers, c)
		}
	}

	contributorTable := func(title string, rows []komorebi.Contribution) {
		if len(rows) == 0 {
			return
		}
		doc.H2(title)
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Ticker", "Contribution", "Of Total", "Performance"},
			Rows:   [][]string{},
		}
		for _, c := range rows {
			relative := "n/a"
			if c.RelativeKnown {
				relative = c.Relative.SignedString()
			}
			table.Rows = append(table.Rows, []string{
				c.Ticker,
				c.Absolute.SignedString(),
				relative,
				c.Performance.SignedString(),
			})
		}
		doc.Table(table)
	}

	contributorTable("Winners", winners)
	contributorTable("Losers", losers)

	return doc.String()
}
