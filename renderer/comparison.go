package renderer

import (
	"bytes"
	"fmt"

	komorebi "github.com/komorebi/invest55"
	md "github.com/nao1215/markdown"
)

func ComparisonMarkdown(c *komorebi.Comparison) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Performance %s", c.Range))
	doc.PlainText(fmt.Sprintf("Same notional invested in the portfolio and in each index, in %s.", c.Currency))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"", "Invested", "Value", "Return"},
		Rows:   [][]string{},
	}
	for _, row := range c.Rows {
		table.Rows = append(table.Rows, []string{
			row.Label,
			row.Start.String(),
			row.Final.String(),
			row.Return.SignedString(),
		})
	}
	doc.Table(table)

	if len(c.History) > 0 {
		doc.H2("Month by month")
		history := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft},
			Header:    []string{"Date"},
			Rows:      [][]string{},
		}
		for _, row := range c.Rows {
			history.Alignment = append(history.Alignment, md.AlignRight)
			history.Header = append(history.Header, row.Label)
		}
		for _, m := range c.History {
			cells := []string{m.Date.String()}
			for _, v := range m.Values {
				cells = append(cells, v.String())
			}
			history.Rows = append(history.Rows, cells)
		}
		doc.Table(history)
	}

	return doc.String()
}
