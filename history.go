package kessan

import (
	"encoding/json"

	"github.com/etnz/kessan/date"
)

// HistoryRow is the valuation replay of a single disclosure: that row's own
// raw values plus the ratios computed from them and the price aligned to the
// row's disclosure date. Neighboring rows never contribute values.
type HistoryRow struct {
	On              date.Date
	Profit          *float64
	PER             *float64
	PBR             *float64
	ROE             *float64
	PCFR            *float64
	Revenue         *float64
	OperatingProfit *float64
	OrdinaryProfit  *float64
	EPS             *float64
	BPS             *float64
	CFO             *float64
	CashEquivalents *float64
	MarketCap       *float64
}

// MarshalJSON encodes the row as the fixed 14-element array the dashboard
// expects:
//
//	[date, profit, per, pbr, roe, pcfr, revenue, op, ordp, eps, bps, cfo, cash, mcap]
func (r HistoryRow) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{
		r.On.String(),
		r.Profit, r.PER, r.PBR, r.ROE, r.PCFR,
		r.Revenue, r.OperatingProfit, r.OrdinaryProfit,
		r.EPS, r.BPS, r.CFO, r.CashEquivalents, r.MarketCap,
	})
}

// BuildHistory replays the ratio derivation per disclosure, in the order the
// series was supplied. The reference price of each row is the close on or
// before the row's disclosure date; a row without a usable disclosure date
// is skipped, not emitted.
func BuildHistory(prices *date.History[float64], ds Disclosures) []HistoryRow {
	rows := make([]HistoryRow, 0, len(ds))
	for _, d := range ds {
		on, ok := d.DisclosedOn()
		if !ok {
			continue
		}
		f := fundamentalsOf(d)
		m := ComputeMetrics(num(prices.ValueAsOf(on)), f)
		rows = append(rows, HistoryRow{
			On:              on,
			Profit:          f.Profit,
			PER:             m.PER,
			PBR:             m.PBR,
			ROE:             m.ROE,
			PCFR:            m.PCFR,
			Revenue:         f.Revenue,
			OperatingProfit: f.OperatingProfit,
			OrdinaryProfit:  f.OrdinaryProfit,
			EPS:             f.EPS,
			BPS:             f.BPS,
			CFO:             f.CFO,
			CashEquivalents: f.CashEquivalents,
			MarketCap:       m.MarketCap,
		})
	}
	return rows
}
