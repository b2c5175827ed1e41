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

// listCmd holds the flags for the 'list' subcommand.
type listCmd struct {
	typ   string
	query string
	sort  string
	desc  bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display the summary cards and the asset table" }
func (*listCmd) Usage() string {
	return `ltv list [-type <type>] [-q <text>] [-sort <field>] [-desc]

  Displays the summary cards and the table of assets, filtered by type,
  searched by text and sorted. See 'ltv topic query'.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.typ, "type", string(collateral.AllTypes), "Asset type to list: all, stock, bond, crypto, forex or commodity.")
	f.StringVar(&c.query, "q", "", "Only list assets whose symbol or name contains this text.")
	f.StringVar(&c.sort, "sort", "", "Field to sort by. Keeps the collection order when empty.")
	f.BoolVar(&c.desc, "desc", false, "Sort in descending order.")
}

// view parses the flags into a View.
func (c *listCmd) view() (collateral.View, error) {
	typ, err := collateral.ParseTypeFilter(c.typ)
	if err != nil {
		return collateral.View{}, err
	}
	v := collateral.View{Type: typ, Query: c.query, Direction: collateral.Ascending}
	if c.sort != "" {
		if v.Sort, err = collateral.ParseSortField(c.sort); err != nil {
			return collateral.View{}, err
		}
	}
	if c.desc {
		v.Direction = collateral.Descending
	}
	return v, nil
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	view, err := c.view()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	return runDashboard(view)
}

// runDashboard prints the dashboard of the loaded assets.
func runDashboard(view collateral.View) subcommands.ExitStatus {
	p, assets, err := load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	d, err := renderer.NewDashboard(p, view, assets)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	printMarkdown(renderer.RenderDashboard(d))
	return subcommands.ExitSuccess
}
