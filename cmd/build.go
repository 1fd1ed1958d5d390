package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kessan"
	"github.com/google/subcommands"
)

type buildCmd struct {
	output string
}

func (*buildCmd) Name() string { return "build" }
func (*buildCmd) Synopsis() string {
	return "build the aggregate dashboard JSON from the input CSV folders"
}
func (*buildCmd) Usage() string {
	return `kd build [-o <file>]

  Reads every disclosure file under -finance-dir, pairs it with its price
  file under -price-dir, computes the valuation snapshot, the monthly chart
  series and the per-disclosure history of each security, and writes the
  aggregate JSON array. Securities with unusable inputs are skipped and
  counted, never fatal.
`
}

func (c *buildCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "stock_data.json", "Path of the output JSON file.")
}

func (c *buildCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	u, err := LoadUniverse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	stocks := u.Stocks()

	out, err := os.Create(c.output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if err := kessan.EncodeStocks(out, stocks); err != nil {
		out.Close()
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	if err := out.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Processed %d securities (skipped: %d)\n", len(stocks), u.Skipped())
	if fi, err := os.Stat(c.output); err == nil {
		fmt.Fprintf(os.Stderr, "Wrote %s (%.1f MB)\n", c.output, float64(fi.Size())/(1<<20))
	}
	return subcommands.ExitSuccess
}
