package kessan

import "github.com/etnz/kessan/date"

// Snapshot is the current view of one security: every disclosure field
// resolved independently over the whole series, the single latest close as
// reference price, and the ratios derived from that one price.
type Snapshot struct {
	Code  string
	Name  string
	On    date.Date // date of the latest close
	Price float64

	Numbers map[string]*float64 // resolved numeric fields, by output key
	Texts   map[string]*string  // resolved text fields, by output key
	Metrics Metrics
}

// NewSnapshot builds the snapshot of sec. It returns false when the price
// series is empty: such a security cannot be valued and is skipped upstream.
func NewSnapshot(sec *Security) (*Snapshot, bool) {
	if sec.prices.Len() == 0 {
		return nil, false
	}
	on, price := sec.prices.Latest()
	s := &Snapshot{
		Code:    sec.code,
		Name:    sec.name,
		On:      on,
		Price:   price,
		Numbers: make(map[string]*float64),
		Texts:   make(map[string]*string),
	}
	for f := range Fields() {
		switch f.Kind {
		case Number:
			s.Numbers[f.Key] = num(sec.disclosures.ResolveNumber(f))
		case Text:
			if v, ok := sec.disclosures.ResolveText(f); ok {
				s.Texts[f.Key] = &v
			} else {
				s.Texts[f.Key] = nil
			}
		}
	}
	// The snapshot uses the latest price for every ratio, not per-field
	// disclosure-date pricing.
	s.Metrics = ComputeMetrics(&price, resolveFundamentals(sec.disclosures))
	return s, true
}
