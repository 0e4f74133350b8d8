package komorebi

import "github.com/komorebi/invest55/date"

// QuoteSummary is the latest state of one holding, the data behind the
// dashboard's scrolling ticker: last close, move since the previous
// close, in the security's native currency.
type QuoteSummary struct {
	Ticker        string
	Name          string
	Currency      string
	Date          date.Date
	Price         Money
	Change        Money
	ChangePercent Percent
}

// QuoteSummaries returns the latest quote for every holding with data,
// in reference order. Holdings with a single observation report a zero
// change; holdings with none are skipped.
func (p *Portfolio) QuoteSummaries() []QuoteSummary {
	var out []QuoteSummary
	for _, ticker := range p.Reference.Tickers() {
		s := p.Market.Security(ticker)
		if s == nil || s.Len() == 0 {
			continue
		}
		on, last, _ := s.Last()
		q := QuoteSummary{
			Ticker:   ticker,
			Name:     p.Reference.Label(ticker),
			Currency: s.Currency(),
			Date:     on,
			Price:    M(last, s.Currency()),
		}
		if prev, ok := s.AsOf(on.Add(-1)); ok && prev != 0 {
			q.Change = M(last-prev, s.Currency())
			q.ChangePercent = Percent(100 * (last - prev) / prev)
		} else {
			q.Change = M(0, s.Currency())
		}
		out = append(out, q)
	}
	return out
}
