package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/collateral"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	path   string
	output string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "validate and normalise an assets file" }
func (*importCmd) Usage() string {
	return `ltv import [-path <jsonpath>] [-o <file>] <file|->

  Reads assets from a JSON document, checks them, fills in the missing
  fields and writes the normalised assets file. See 'ltv topic import'.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.path, "path", collateral.DefaultAssetsPath, "JSONPath selecting the array of assets.")
	f.StringVar(&c.output, "o", "", "Output file. Defaults to stdout.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: import requires exactly one input file, or - for stdin")
		return subcommands.ExitUsageError
	}
	input := f.Arg(0)

	p, err := loadPolicy()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var r io.Reader = os.Stdin
	if input != "-" {
		in, err := os.Open(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", input, err)
			return subcommands.ExitFailure
		}
		defer in.Close()
		r = in
	}

	assets, err := collateral.ImportAssets(r, collateral.ImportOptions{Path: c.path, Policy: &p, Now: now})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	w := stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}
	if err := collateral.ExportAssets(w, assets); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	log.Info().Str("input", input).Int("count", len(assets)).Msg("assets imported")
	return subcommands.ExitSuccess
}
