package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/kessan"
	"github.com/etnz/kessan/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct {
	code string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "ask the AI analyst to comment on one security's valuation"
}
func (*assistCmd) Usage() string {
	return `kd assist -c <code>

  Sends the security's valuation snapshot to a Gemini analyst persona and
  prints the commentary. Requires a GEMINI_API_KEY in the environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.code, "c", "", "security code to comment on")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	data, err := json.Marshal(stock)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	analyst := agent.NewAnalyst()
	if err := analyst.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed to start:", err)
		return subcommands.ExitFailure
	}
	comment, err := analyst.Review(ctx, string(data))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}

	printMarkdown(comment)
	return subcommands.ExitSuccess
}
