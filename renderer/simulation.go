package renderer

import (
	"bytes"
	"fmt"

	komorebi "github.com/komorebi/invest55"
	md "github.com/nao1215/markdown"
)

func SimulationMarkdown(s *komorebi.Simulation) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Simulation %s", s.Range))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Invested", s.Invested.String()},
			{"Final Value", s.Final.String()},
			{"Total Return", s.Return.SignedString()},
			{"Annualized", s.Annualized.SignedString()},
			{"Max Drawdown", s.MaxDrawdown.SignedString()},
			{fmt.Sprintf("Best Day (%s)", s.BestDay), s.BestDayReturn.SignedString()},
			{fmt.Sprintf("Worst Day (%s)", s.WorstDay), s.WorstDayReturn.SignedString()},
		},
	}
	doc.Table(table)

	return doc.String()
}
