package pantry

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// DecodeGroceries decodes groceries from a stream of JSONL data, one grocery per line:
//
//	{"name":"Milk","quantity":1,"total":{"currency":"EUR","amount":1.2},"unit":"liter","expiry":"2025-01-01"}
//
// Empty lines are skipped. Every grocery is validated.
func DecodeGroceries(r io.Reader) ([]Grocery, error) {
	var list []Grocery
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var g Grocery
		if err := json.Unmarshal(line, &g); err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		list = append(list, g)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read groceries: %w", err)
	}
	return list, nil
}

// EncodeGroceries writes groceries as JSONL, one grocery per line.
func EncodeGroceries(w io.Writer, list []Grocery) error {
	for _, g := range list {
		data, err := json.Marshal(g)
		if err != nil {
			return fmt.Errorf("cannot encode %q: %w", g.Name(), err)
		}
		data = append(data, '\n')
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

// Import decodes groceries from r and adds them to s. It returns the number of groceries added.
func Import(s Store, r io.Reader) (int, error) {
	list, err := DecodeGroceries(r)
	if err != nil {
		return 0, err
	}
	for i, g := range list {
		if err := s.Add(g); err != nil {
			return i, err
		}
	}
	return len(list), nil
}
