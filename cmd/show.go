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

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the LTV card of an asset" }
func (*showCmd) Usage() string {
	return `ltv show <symbol|id>

  Displays the market data, risk band, margin levels and loan amounts of a
  single asset.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: show requires exactly one symbol or id")
		return subcommands.ExitUsageError
	}
	key := f.Arg(0)

	p, assets, err := load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	asset, ok := collateral.FindAsset(assets, key)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no asset %q\n", key)
		return subcommands.ExitFailure
	}
	d, err := p.Detail(asset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderDetail(&d))
	return subcommands.ExitSuccess
}
