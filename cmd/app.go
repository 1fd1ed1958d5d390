// Package cmd implements the CLI application to build and inspect the
// dashboard data.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kessan"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to allow subcommands, and Execute() on the
// user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buildCmd{}, "data")

	c.Register(&showCmd{}, "inspect")
	c.Register(&assistCmd{}, "inspect")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var financeDir = flag.String("finance-dir", "financedata", "Path to the folder with per-security disclosure CSV files")
var priceDir = flag.String("price-dir", "data", "Path to the folder with per-security daily price CSV files")
var namesFile = flag.String("names-file", "", "Path to the code,name lookup CSV (optional; codes without an entry display as themselves)")

// LoadUniverse loads the securities universe from the app input folders.
func LoadUniverse() (*kessan.Universe, error) {
	names := map[string]string{}
	if *namesFile != "" {
		f, err := os.Open(*namesFile)
		if err != nil {
			return nil, fmt.Errorf("cannot open names file: %w", err)
		}
		defer f.Close()
		if names, err = kessan.ImportNames(f); err != nil {
			return nil, fmt.Errorf("cannot read names file: %w", err)
		}
	}
	return kessan.Load(*financeDir, *priceDir, names)
}
