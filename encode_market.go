package komorebi

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/komorebi/invest55/date"
)

// Market data persists in a folder of JSONL files, human-readable and
// git-friendly: one line per fact, deterministic order, so diffs show
// exactly which prices changed.
//
//	securities.jsonl  {"ticker":"ERF.PA","currency":"EUR"}
//	prices.jsonl      {"ticker":"ERF.PA","on":"2023-01-05","close":67.84}
//	rates.jsonl       {"pair":"USDEUR","on":"2023-01-05","rate":0.9447}

const (
	securitiesFile = "securities.jsonl"
	pricesFile     = "prices.jsonl"
	ratesFile      = "rates.jsonl"
)

type jsecurity struct {
	Ticker   string `json:"ticker"`
	Currency string `json:"currency"`
}

type jprice struct {
	Ticker string    `json:"ticker"`
	On     date.Date `json:"on"`
	Close  float64   `json:"close"`
}

type jrate struct {
	Pair string    `json:"pair"`
	On   date.Date `json:"on"`
	Rate float64   `json:"rate"`
}

// DecodeMarketData reads a market data folder. A missing folder is an
// fs.ErrNotExist error so callers can start from an empty database.
func DecodeMarketData(dir string) (*MarketData, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	m := NewMarketData()

	if err := decodeLines(filepath.Join(dir, securitiesFile), func(line []byte) error {
		var js jsecurity
		if err := json.Unmarshal(line, &js); err != nil {
			return err
		}
		_, err := m.Declare(js.Ticker, js.Currency)
		return err
	}); err != nil {
		return nil, err
	}

	if err := decodeLines(filepath.Join(dir, pricesFile), func(line []byte) error {
		var jp jprice
		if err := json.Unmarshal(line, &jp); err != nil {
			return err
		}
		s := m.Security(jp.Ticker)
		if s == nil {
			return fmt.Errorf("price for undeclared security %q", jp.Ticker)
		}
		s.Append(jp.On, jp.Close)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := decodeLines(filepath.Join(dir, ratesFile), func(line []byte) error {
		var jr jrate
		if err := json.Unmarshal(line, &jr); err != nil {
			return err
		}
		if len(jr.Pair) != 6 {
			return fmt.Errorf("invalid currency pair %q", jr.Pair)
		}
		m.Rates(jr.Pair[:3], jr.Pair[3:]).Append(jr.On, jr.Rate)
		return nil
	}); err != nil {
		return nil, err
	}

	return m, nil
}

// decodeLines feeds every non-blank line of a JSONL file to fn. A
// missing file is fine: each file is optional.
func decodeLines(path string, fn func(line []byte) error) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for i := 1; scanner.Scan(); i++ {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		if err := fn(line); err != nil {
			return fmt.Errorf("format error in %s line %d: %w", path, i, err)
		}
	}
	return scanner.Err()
}

// EncodeMarketData writes the market data folder, creating it when
// needed. Output is fully sorted (ticker then date) so repeated encodes
// of the same data are byte-identical.
func EncodeMarketData(dir string, m *MarketData) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create market data folder: %w", err)
	}

	if err := encodeFile(filepath.Join(dir, securitiesFile), func(w io.Writer) error {
		for _, ticker := range m.Tickers() {
			s := m.Security(ticker)
			if err := encodeLine(w, jsecurity{Ticker: ticker, Currency: s.Currency()}); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	if err := encodeFile(filepath.Join(dir, pricesFile), func(w io.Writer) error {
		for _, ticker := range m.Tickers() {
			for on, close := range m.Security(ticker).Prices().Values() {
				if err := encodeLine(w, jprice{Ticker: ticker, On: on, Close: close}); err != nil {
					return err
				}
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return encodeFile(filepath.Join(dir, ratesFile), func(w io.Writer) error {
		for _, pair := range m.Pairs() {
			for on, rate := range m.Rates(pair[:3], pair[3:]).Values() {
				if err := encodeLine(w, jrate{Pair: pair, On: on, Rate: rate}); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func encodeFile(path string, fn func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := fn(w); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeLine(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = w.Write([]byte{'\n'})
	return err
}
