package kessan

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

// Stock is one security's complete output record: the current snapshot, the
// monthly chart series and the per-disclosure history.
type Stock struct {
	Snapshot *Snapshot
	Monthly  []MonthlyClose
	History  []HistoryRow
}

// NewStock computes the three output facets of one security. It returns
// false when the security has no usable price series.
func NewStock(sec *Security) (*Stock, bool) {
	snap, ok := NewSnapshot(sec)
	if !ok {
		return nil, false
	}
	return &Stock{
		Snapshot: snap,
		Monthly:  MonthlyCloses(sec.Prices()),
		History:  BuildHistory(sec.Prices(), sec.Disclosures()),
	}, true
}

// MarshalJSON emits the record with a stable property order: identity and
// price, the resolved fields in catalog order, the derived ratios, then the
// 'ph' chart and 'fh' history arrays. Absent values encode as explicit
// nulls, never as omitted keys.
func (s *Stock) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("code", s.Snapshot.Code)
	w.Append("name", s.Snapshot.Name)
	w.Append("price", s.Snapshot.Price)
	for f := range Fields() {
		switch f.Kind {
		case Number:
			w.Append(f.Key, s.Snapshot.Numbers[f.Key])
		case Text:
			w.Append(f.Key, s.Snapshot.Texts[f.Key])
		}
	}
	m := s.Snapshot.Metrics
	w.Append("per", m.PER)
	w.Append("pbr", m.PBR)
	w.Append("roe", m.ROE)
	w.Append("pcfr", m.PCFR)
	w.Append("yield", m.DividendYield)
	w.Append("fyield", m.ForecastDividendYield)
	w.Append("roa", m.ROA)
	w.Append("mcap", m.MarketCap)
	w.Append("fper", m.ForecastPER)
	w.Append("psr", m.PSR)
	w.Append("evebitda", m.EVEBITDA)
	w.Append("cfsum", m.CashFlowTotal)
	w.Append("ph", s.Monthly)
	w.Append("fh", s.History)
	return w.MarshalJSON()
}

// EncodeStocks writes the aggregate dashboard array to w, one object per
// security, in the order given. The output is compact; identical inputs
// produce byte-identical output.
func EncodeStocks(w io.Writer, stocks []*Stock) error {
	bw := bufio.NewWriter(w)
	bw.WriteByte('[')
	for i, s := range stocks {
		if i > 0 {
			bw.WriteByte(',')
		}
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("cannot marshal security %q: %w", s.Snapshot.Code, err)
		}
		bw.Write(data)
	}
	bw.WriteByte(']')
	return bw.Flush()
}
