package kessan

import "iter"

// Kind tells how a disclosure field's raw token is interpreted.
type Kind int

const (
	// Number fields parse to a decimal value.
	Number Kind = iota
	// Text fields are kept verbatim (dates of the fiscal calendar).
	Text
)

// Field describes one column of the disclosure files: how to read it, and
// under which property name to publish it.
type Field struct {
	Column       string // header of the CSV column
	Key          string // property name in the output JSON
	Kind         Kind
	ZeroExcluded bool // a parsed value of exactly 0 reads as absent
}

func number(column, key string) Field { return Field{Column: column, Key: key, Kind: Number} }
func text(column, key string) Field   { return Field{Column: column, Key: key, Kind: Text} }

// nonZero marks the field zero-excluded: a 0 on the most recent disclosure
// must not shadow an older usable value.
func nonZero(f Field) Field { f.ZeroExcluded = true; return f }

// The disclosure field catalog. These are values, not references: a Field
// cannot be mutated through them.
var (
	Revenue                     = number("Revenue", "revenue")
	OperatingProfit             = number("OperatingProfit", "op")
	OrdinaryProfit              = number("OrdinaryProfit", "ordp")
	Profit                      = number("Profit", "profit")
	EPS                         = nonZero(number("EPS", "eps"))
	DilutedEPS                  = number("DilutedEPS", "deps")
	TotalAssets                 = number("TotalAssets", "assets")
	Equity                      = number("Equity", "equity")
	EquityRatio                 = number("EquityRatio", "eqratio")
	BPS                         = nonZero(number("BPS", "bps"))
	CFO                         = nonZero(number("CFO", "cfo"))
	CFI                         = number("CFI", "cfi")
	CFF                         = number("CFF", "cff")
	CashEquivalents             = number("CashEq", "cash")
	Dividend                    = number("Dividend", "div")
	ForecastDividend            = number("FDividend", "fdiv")
	ForecastPayoutRatio         = number("FPayoutRatio", "fpayout")
	ForecastRevenue             = number("FRevenue", "frevenue")
	ForecastOperatingProfit     = number("FOperatingProfit", "fop")
	ForecastOrdinaryProfit      = number("FOrdinaryProfit", "fordp")
	ForecastProfit              = number("FProfit", "fprofit")
	ForecastEPS                 = number("FEPS", "feps")
	NextForecastRevenue         = number("NxtFRevenue", "nfrevenue")
	NextForecastOperatingProfit = number("NxtFOperatingProfit", "nfop")
	NextForecastOrdinaryProfit  = number("NxtFOrdinaryProfit", "nfordp")
	NextForecastProfit          = number("NxtFProfit", "nfprofit")
	NextForecastEPS             = number("NxtFEPS", "nfeps")
	CurrentFYEnd                = text("CurFYEn", "curfy")
	DisclosedDate               = text("DiscDate", "discdate")
	NextFYEnd                   = text("NxtFYEn", "nxtfy")
)

// catalog lists every disclosure field in output order.
var catalog = []Field{
	Revenue, OperatingProfit, OrdinaryProfit, Profit,
	EPS, DilutedEPS,
	TotalAssets, Equity, EquityRatio, BPS,
	CFO, CFI, CFF, CashEquivalents,
	Dividend, ForecastDividend, ForecastPayoutRatio,
	ForecastRevenue, ForecastOperatingProfit, ForecastOrdinaryProfit, ForecastProfit, ForecastEPS,
	NextForecastRevenue, NextForecastOperatingProfit, NextForecastOrdinaryProfit, NextForecastProfit, NextForecastEPS,
	CurrentFYEnd, DisclosedDate, NextFYEnd,
}

// Fields returns an iterator over the disclosure field catalog, in the order
// the output serializer must follow.
func Fields() iter.Seq[Field] {
	return func(yield func(Field) bool) {
		for _, f := range catalog {
			if !yield(f) {
				return
			}
		}
	}
}
