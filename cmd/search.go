package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/collateral"
	"github.com/google/subcommands"
)

type searchCmd struct {
	typ string
}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "search assets by symbol or name" }
func (*searchCmd) Usage() string {
	return `ltv search [-type <type>] <text>

  Displays the assets whose symbol or name contains <text>, ignoring case.
`
}

func (c *searchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", string(collateral.AllTypes), "Asset type to search in.")
}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	text := strings.TrimSpace(strings.Join(f.Args(), " "))
	if text == "" {
		fmt.Fprintln(os.Stderr, "Error: search requires a text")
		return subcommands.ExitUsageError
	}
	typ, err := collateral.ParseTypeFilter(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return runDashboard(collateral.View{Type: typ, Query: text})
}
