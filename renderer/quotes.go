package renderer

import (
	"bytes"

	komorebi "github.com/komorebi/invest55"
	md "github.com/nao1215/markdown"
)

func QuotesMarkdown(quotes []komorebi.QuoteSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Latest Quotes")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Ticker", "Name", "Date", "Price", "Change", "Change %"},
		Rows:   [][]string{},
	}
	for _, q := range quotes {
		table.Rows = append(table.Rows, []string{
			q.Ticker,
			q.Name,
			q.Date.String(),
			q.Price.String(),
			q.Change.SignedString(),
			q.ChangePercent.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
