package renderer

import (
	"bytes"
	"fmt"

	komorebi "github.com/komorebi/invest55"
	md "github.com/nao1215/markdown"
)

func BreakdownMarkdown(b *komorebi.Breakdown) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Breakdown %s", b.Range))

	groupTable := func(title, column string, groups []komorebi.GroupStats) {
		if len(groups) == 0 {
			return
		}
		doc.H2(title)
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{column, "Holdings", "Weight", "Mean", "Min", "Max"},
			Rows:   [][]string{},
		}
		for _, g := range groups {
			table.Rows = append(table.Rows, []string{
				g.Label,
				fmt.Sprintf("%d", g.Count),
				g.Weight.String(),
				g.Mean.SignedString(),
				g.Min.SignedString(),
				g.Max.SignedString(),
			})
		}
		doc.Table(table)
	}

	groupTable("By Sector", "Sector", b.BySector)
	groupTable("By Country", "Country", b.ByCountry)

	return doc.String()
}
