package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kessan"
	"github.com/etnz/kessan/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	code string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display one security's valuation report" }
func (*showCmd) Usage() string {
	return `kd show -c <code>

  Renders the current valuation snapshot of a single security as a markdown
  report: latest close, derived ratios, and key fundamentals.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "security code to report on")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.code == "" {
		fmt.Fprintln(os.Stderr, "-c is required")
		return subcommands.ExitUsageError
	}

	u, err := LoadUniverse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	sec := u.Get(c.code)
	if sec == nil {
		fmt.Fprintf(os.Stderr, "unknown security %q\n", c.code)
		return subcommands.ExitFailure
	}
	stock, ok := kessan.NewStock(sec)
	if !ok {
		fmt.Fprintf(os.Stderr, "security %q has no usable price series\n", c.code)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.Markdown(report(stock)))
	return subcommands.ExitSuccess
}

// report maps a stock's snapshot onto the renderer's view.
func report(st *kessan.Stock) *renderer.Report {
	s := st.Snapshot
	m := s.Metrics
	return &renderer.Report{
		Code:  s.Code,
		Name:  s.Name,
		On:    s.On.String(),
		Price: s.Price,
		Ratios: []renderer.Ratio{
			{Label: "PER", Value: m.PER, Unit: "x"},
			{Label: "PBR", Value: m.PBR, Unit: "x"},
			{Label: "ROE", Value: m.ROE, Unit: "%"},
			{Label: "PCFR", Value: m.PCFR, Unit: "x"},
			{Label: "Dividend yield", Value: m.DividendYield, Unit: "%"},
			{Label: "Forward dividend yield", Value: m.ForecastDividendYield, Unit: "%"},
			{Label: "ROA", Value: m.ROA, Unit: "%"},
			{Label: "Forward PER", Value: m.ForecastPER, Unit: "x"},
			{Label: "PSR", Value: m.PSR, Unit: "x"},
			{Label: "EV/EBITDA", Value: m.EVEBITDA, Unit: "x"},
		},
		Figures: []renderer.Figure{
			{Label: "Market cap", Value: m.MarketCap},
			{Label: "Revenue", Value: s.Numbers[kessan.Revenue.Key]},
			{Label: "Operating profit", Value: s.Numbers[kessan.OperatingProfit.Key]},
			{Label: "Net profit", Value: s.Numbers[kessan.Profit.Key]},
			{Label: "Total assets", Value: s.Numbers[kessan.TotalAssets.Key]},
			{Label: "Equity", Value: s.Numbers[kessan.Equity.Key]},
			{Label: "Operating cash flow", Value: s.Numbers[kessan.CFO.Key]},
			{Label: "Cash equivalents", Value: s.Numbers[kessan.CashEquivalents.Key]},
		},
	}
}
