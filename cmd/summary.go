package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/collateral"
	"github.com/etnz/collateral/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	typ string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the summary cards" }
func (*summaryCmd) Usage() string {
	return `ltv summary [-type <type>]

  Displays the total available loan value, the average LTV and the number of
  high risk and near liquidation assets.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", string(collateral.AllTypes), "Asset type to summarise.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	typ, err := collateral.ParseTypeFilter(c.typ)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	p, assets, err := load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	cards, err := p.Cards(p.Aggregate(collateral.FilterByType(assets, typ)))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderCards(cards))
	return subcommands.ExitSuccess
}
