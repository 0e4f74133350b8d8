package komorebi

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

// Company is the static reference record for one holding: labeling data
// only, never an input to valuation math.
type Company struct {
	Ticker      string
	Name        string
	Sector      string
	Country     string
	Description string
}

// Reference is a typed lookup from ticker to company metadata. Lookups
// tolerate absent tickers: the label falls back to the ticker itself, so
// a stale reference file never blocks a computation.
type Reference struct {
	companies []Company
	index     map[string]int
}

// NewReference builds a reference from company records. Later records
// replace earlier ones with the same ticker.
func NewReference(companies []Company) *Reference {
	r := &Reference{index: make(map[string]int, len(companies))}
	for _, c := range companies {
		if i, ok := r.index[c.Ticker]; ok {
			r.companies[i] = c
			continue
		}
		r.index[c.Ticker] = len(r.companies)
		r.companies = append(r.companies, c)
	}
	return r
}

// Tickers returns all reference tickers in file order.
func (r *Reference) Tickers() []string {
	tickers := make([]string, len(r.companies))
	for i, c := range r.companies {
		tickers[i] = c.Ticker
	}
	return tickers
}

// Get returns the company record for a ticker.
func (r *Reference) Get(ticker string) (Company, bool) {
	i, ok := r.index[ticker]
	if !ok {
		return Company{}, false
	}
	return r.companies[i], true
}

// Label returns the company name for a ticker, or the ticker itself when
// the reference has no record for it.
func (r *Reference) Label(ticker string) string {
	if c, ok := r.Get(ticker); ok && c.Name != "" {
		return c.Name
	}
	return ticker
}

// Len returns the number of companies in the reference.
func (r *Reference) Len() int { return len(r.companies) }

// referenceColumns are the required CSV headers, in any order. Extra
// columns are ignored.
var referenceColumns = []string{"Ticker", "Name", "Sector", "Country", "Description"}

// DecodeReference reads company reference data from a CSV file with a
// header row. Only the Ticker column is mandatory per record; empty
// label fields are tolerated.
func DecodeReference(r io.Reader) (*Reference, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading reference header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["Ticker"]; !ok {
		return nil, fmt.Errorf("reference file is missing the %q column (has %v)", "Ticker", header)
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var companies []Company
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading reference line %d: %w", line, err)
		}
		ticker := field(record, "Ticker")
		if ticker == "" {
			continue
		}
		if err := ValidateTicker(ticker); err != nil {
			return nil, fmt.Errorf("reference line %d: %w", line, err)
		}
		companies = append(companies, Company{
			Ticker:      ticker,
			Name:        field(record, "Name"),
			Sector:      field(record, "Sector"),
			Country:     field(record, "Country"),
			Description: field(record, "Description"),
		})
	}
	return NewReference(companies), nil
}

// LoadReference reads company reference data from a CSV file on disk.
func LoadReference(path string) (*Reference, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening reference file: %w", err)
	}
	defer f.Close()
	ref, err := DecodeReference(f)
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", path, err)
	}
	return ref, nil
}

// Sectors returns the distinct sectors present in the reference, sorted.
func (r *Reference) Sectors() []string { return r.distinct(func(c Company) string { return c.Sector }) }

// Countries returns the distinct countries present in the reference, sorted.
func (r *Reference) Countries() []string {
	return r.distinct(func(c Company) string { return c.Country })
}

func (r *Reference) distinct(key func(Company) string) []string {
	var out []string
	for _, c := range r.companies {
		if k := key(c); k != "" && !slices.Contains(out, k) {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
