package kessan

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/kessan/date"
)

// this file contains functions to read the input CSV exports. Reading is
// tolerant: a row that cannot be used is dropped, it never fails the import.

// columnIndex maps trimmed header names to their column position.
func columnIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	return idx
}

// cell returns the trimmed cell at position i, or "" when the row is shorter.
func cell(rec []string, i int, ok bool) string {
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

// ImportPrices reads a security's daily price CSV (columns Date, Close) into
// a sorted price history.
//
// A row whose date or close does not parse is dropped. Duplicate dates keep
// the later-read close: the last write wins, it is not an error.
func ImportPrices(r io.Reader) (*date.History[float64], error) {
	prices := new(date.History[float64])

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return prices, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read price header: %w", err)
	}
	idx := columnIndex(header)
	iDate, hasDate := idx["Date"]
	iClose, hasClose := idx["Close"]

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read price row: %w", err)
		}
		on, err := date.Parse(cell(rec, iDate, hasDate))
		if err != nil {
			continue
		}
		close, err := strconv.ParseFloat(cell(rec, iClose, hasClose), 64)
		if err != nil {
			continue
		}
		prices.Append(on, close)
	}
	return prices, nil
}

// ImportDisclosures reads a security's disclosure CSV into a series, keeping
// the file's row order.
//
// The engine never re-sorts this series: callers are expected to supply it in
// ascending chronological order, which is how the exports are produced.
func ImportDisclosures(r io.Reader) (Disclosures, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read disclosure header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var ds Disclosures
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read disclosure row: %w", err)
		}
		values := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(rec) {
				values[name] = rec[i]
			}
		}
		ds = append(ds, NewDisclosure(values))
	}
	return ds, nil
}

// ImportNames reads the code→display-name lookup, a headerless two-column
// CSV. Rows with fewer than two columns are dropped.
func ImportNames(r io.Reader) (map[string]string, error) {
	names := make(map[string]string)

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return names, nil
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read names row: %w", err)
		}
		if len(rec) < 2 {
			continue
		}
		code := strings.TrimSpace(rec[0])
		name := strings.TrimSpace(rec[1])
		if code == "" || name == "" {
			continue
		}
		names[code] = name
	}
}
