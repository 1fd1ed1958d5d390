package kessan

import "github.com/shopspring/decimal"

// Fundamentals is the set of raw inputs of one valuation point: either a
// single disclosure row's own values, or the per-field resolution of a whole
// series. A nil input is absent.
type Fundamentals struct {
	Revenue          *float64
	OperatingProfit  *float64
	OrdinaryProfit   *float64
	Profit           *float64
	EPS              *float64
	BPS              *float64
	TotalAssets      *float64
	CFO              *float64
	CFI              *float64
	CFF              *float64
	CashEquivalents  *float64
	Dividend         *float64
	ForecastDividend *float64
	ForecastEPS      *float64
}

// Metrics is the set of derived valuation ratios. A nil ratio was not
// computed: a required input was absent or a guard failed. Derivation never
// produces an error value and never divides by zero.
type Metrics struct {
	PER                   *float64
	PBR                   *float64
	ROE                   *float64
	PCFR                  *float64
	DividendYield         *float64
	ForecastDividendYield *float64
	ROA                   *float64
	MarketCap             *float64
	ForecastPER           *float64
	PSR                   *float64
	EVEBITDA              *float64
	CashFlowTotal         *float64
}

var hundred = decimal.NewFromInt(100)

func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// round2 rounds to 2 decimal places, the precision of every percentage and
// multiple ratio.
func round2(d decimal.Decimal) *float64 {
	v := d.Round(2).InexactFloat64()
	return &v
}

// round0 rounds to a whole currency unit (market capitalization).
func round0(d decimal.Decimal) *float64 {
	v := d.Round(0).InexactFloat64()
	return &v
}

// SharesOutstanding estimates the share count as |profit / eps|.
//
// It is an estimate, not an authoritative count, and it is derived again at
// every point of use rather than cached: a change in EPS or profit between
// disclosures silently changes the implied count used for that row's
// MarketCap, PSR and EV/EBITDA.
func (f Fundamentals) SharesOutstanding() (float64, bool) {
	if f.Profit == nil || f.EPS == nil || *f.EPS == 0 {
		return 0, false
	}
	return dec(*f.Profit).Div(dec(*f.EPS)).Abs().InexactFloat64(), true
}

// ComputeMetrics derives every valuation ratio from the fundamentals and the
// reference price. A nil price disables the price-dependent ratios but not
// ROE, ROA or the cash-flow total.
func ComputeMetrics(price *float64, f Fundamentals) Metrics {
	var m Metrics

	// Price-independent ratios.
	if f.EPS != nil && f.BPS != nil && *f.BPS != 0 {
		m.ROE = round2(dec(*f.EPS).Div(dec(*f.BPS)).Mul(hundred))
	}
	if f.Profit != nil && f.TotalAssets != nil && *f.TotalAssets != 0 {
		m.ROA = round2(dec(*f.Profit).Div(dec(*f.TotalAssets)).Mul(hundred))
	}
	if f.CFO != nil && f.CFI != nil && f.CFF != nil {
		// Unrounded sum; absent unless all three components are present.
		total := dec(*f.CFO).Add(dec(*f.CFI)).Add(dec(*f.CFF)).InexactFloat64()
		m.CashFlowTotal = &total
	}

	if price == nil {
		return m
	}
	p := dec(*price)

	if f.EPS != nil && *f.EPS != 0 {
		m.PER = round2(p.Div(dec(*f.EPS)))
	}
	if f.BPS != nil && *f.BPS != 0 {
		m.PBR = round2(p.Div(dec(*f.BPS)))
	}

	shares, ok := f.SharesOutstanding()
	if ok && shares > 0 {
		m.MarketCap = round0(p.Mul(dec(shares)))
	}
	if f.CFO != nil && *f.CFO != 0 && ok && shares > 0 {
		cfps := dec(*f.CFO).Div(dec(shares))
		if !cfps.IsZero() {
			m.PCFR = round2(p.Div(cfps))
		}
	}

	if f.Dividend != nil && *f.Dividend > 0 && *price > 0 {
		m.DividendYield = round2(dec(*f.Dividend).Div(p).Mul(hundred))
	}
	if f.ForecastDividend != nil && *f.ForecastDividend > 0 && *price > 0 {
		m.ForecastDividendYield = round2(dec(*f.ForecastDividend).Div(p).Mul(hundred))
	}
	if f.ForecastEPS != nil && *f.ForecastEPS != 0 {
		m.ForecastPER = round2(p.Div(dec(*f.ForecastEPS)))
	}

	if m.MarketCap != nil && f.Revenue != nil && *f.Revenue != 0 {
		m.PSR = round2(dec(*m.MarketCap).Div(dec(*f.Revenue)))
	}
	if m.MarketCap != nil && f.OperatingProfit != nil && *f.OperatingProfit != 0 {
		cash := 0.0
		if f.CashEquivalents != nil {
			cash = *f.CashEquivalents
		}
		// Enterprise value must stay positive, even for a valid operating
		// profit.
		ev := dec(*m.MarketCap).Sub(dec(cash))
		if ev.IsPositive() {
			m.EVEBITDA = round2(ev.Div(dec(*f.OperatingProfit)))
		}
	}
	return m
}

func num(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}

// fundamentalsOf reads the inputs from a single disclosure row's own values.
// A field blank on this row stays absent even if a neighboring row has it.
func fundamentalsOf(d Disclosure) Fundamentals {
	return Fundamentals{
		Revenue:          num(d.Number(Revenue)),
		OperatingProfit:  num(d.Number(OperatingProfit)),
		OrdinaryProfit:   num(d.Number(OrdinaryProfit)),
		Profit:           num(d.Number(Profit)),
		EPS:              num(d.Number(EPS)),
		BPS:              num(d.Number(BPS)),
		TotalAssets:      num(d.Number(TotalAssets)),
		CFO:              num(d.Number(CFO)),
		CFI:              num(d.Number(CFI)),
		CFF:              num(d.Number(CFF)),
		CashEquivalents:  num(d.Number(CashEquivalents)),
		Dividend:         num(d.Number(Dividend)),
		ForecastDividend: num(d.Number(ForecastDividend)),
		ForecastEPS:      num(d.Number(ForecastEPS)),
	}
}

// resolveFundamentals resolves each input independently over the whole
// series, newest first, honoring zero exclusion.
func resolveFundamentals(ds Disclosures) Fundamentals {
	return Fundamentals{
		Revenue:          num(ds.ResolveNumber(Revenue)),
		OperatingProfit:  num(ds.ResolveNumber(OperatingProfit)),
		OrdinaryProfit:   num(ds.ResolveNumber(OrdinaryProfit)),
		Profit:           num(ds.ResolveNumber(Profit)),
		EPS:              num(ds.ResolveNumber(EPS)),
		BPS:              num(ds.ResolveNumber(BPS)),
		TotalAssets:      num(ds.ResolveNumber(TotalAssets)),
		CFO:              num(ds.ResolveNumber(CFO)),
		CFI:              num(ds.ResolveNumber(CFI)),
		CFF:              num(ds.ResolveNumber(CFF)),
		CashEquivalents:  num(ds.ResolveNumber(CashEquivalents)),
		Dividend:         num(ds.ResolveNumber(Dividend)),
		ForecastDividend: num(ds.ResolveNumber(ForecastDividend)),
		ForecastEPS:      num(ds.ResolveNumber(ForecastEPS)),
	}
}
