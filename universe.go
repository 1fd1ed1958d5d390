package kessan

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Universe holds the securities to process, in discovery order.
type Universe struct {
	securities []*Security
	index      map[string]*Security
	skipped    int
}

// NewUniverse returns a new empty universe.
func NewUniverse() *Universe {
	return &Universe{
		securities: make([]*Security, 0),
		index:      make(map[string]*Security),
	}
}

func (u *Universe) Has(code string) bool {
	_, ok := u.index[code]
	return ok
}

func (u *Universe) Get(code string) *Security { return u.index[code] }

// Len returns the number of loaded securities.
func (u *Universe) Len() int { return len(u.securities) }

// Skipped returns how many discovered securities could not be loaded.
func (u *Universe) Skipped() int { return u.skipped }

func (u *Universe) add(sec *Security) {
	u.securities = append(u.securities, sec)
	u.index[sec.code] = sec
}

// Load discovers and loads the universe. Every *.csv under financeDir names
// a security by its base name; its price file is priceDir/<code>.csv; its
// display name comes from names, falling back to the code.
//
// A security whose price file is missing, whose inputs cannot be read, or
// whose price series comes out empty is logged and counted as skipped; the
// load always continues with the remaining securities.
func Load(financeDir, priceDir string, names map[string]string) (*Universe, error) {
	files, err := filepath.Glob(filepath.Join(financeDir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("cannot scan %q: %w", financeDir, err)
	}
	sort.Strings(files)

	u := NewUniverse()
	for _, fpath := range files {
		code := strings.TrimSuffix(filepath.Base(fpath), ".csv")
		sec, err := loadSecurity(code, names[code], fpath, filepath.Join(priceDir, code+".csv"))
		if err != nil {
			log.Printf("skipping %s: %v", code, err)
			u.skipped++
			continue
		}
		if sec.prices.Len() == 0 {
			log.Printf("skipping %s: empty price series", code)
			u.skipped++
			continue
		}
		u.add(sec)
	}
	return u, nil
}

// loadSecurity reads one security's two input files.
func loadSecurity(code, name, financePath, pricePath string) (*Security, error) {
	if name == "" {
		name = code
	}
	sec := NewSecurity(code, name)

	f, err := os.Open(financePath)
	if err != nil {
		return nil, fmt.Errorf("cannot open disclosures: %w", err)
	}
	defer f.Close()
	if sec.disclosures, err = ImportDisclosures(f); err != nil {
		return nil, fmt.Errorf("cannot read disclosures: %w", err)
	}

	p, err := os.Open(pricePath)
	if err != nil {
		return nil, fmt.Errorf("cannot open prices: %w", err)
	}
	defer p.Close()
	prices, err := ImportPrices(p)
	if err != nil {
		return nil, fmt.Errorf("cannot read prices: %w", err)
	}
	sec.prices = *prices
	return sec, nil
}

// Stocks computes the output record of every security, preserving universe
// order so that identical inputs yield identical output.
func (u *Universe) Stocks() []*Stock {
	stocks := make([]*Stock, 0, len(u.securities))
	for _, sec := range u.securities {
		st, ok := NewStock(sec)
		if !ok {
			u.skipped++
			continue
		}
		stocks = append(stocks, st)
	}
	return stocks
}
