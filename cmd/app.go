// Package cmd implements the ltv command line application.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/collateral"
	"github.com/etnz/collateral/config"
	"github.com/etnz/collateral/logger"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&listCmd{}, "assets")
	c.Register(&searchCmd{}, "assets")
	c.Register(&showCmd{}, "assets")
	c.Register(&summaryCmd{}, "assets")

	c.Register(&importCmd{}, "data")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	assetsFile = flag.String("assets", "", "Path to the JSON assets file. Defaults to the reference collection.")
	policyFile = flag.String("policy", "", "Path to the YAML risk policy file. Defaults to the built-in policy.")
	logLevel   = flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	prettyLogs = flag.Bool("pretty", false, "Human readable logs instead of JSON.")
)

// stdout receives the reports.
var stdout io.Writer = os.Stdout

// now is the clock stamping the reference collection.
var now = time.Now

// Init completes the global flags with cfg, flags set on the command line
// taking precedence, and installs the global logger. It must be called after
// flag.Parse.
func Init(cfg *config.Config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if !set["assets"] {
		*assetsFile = cfg.AssetsFile
	}
	if !set["policy"] {
		*policyFile = cfg.PolicyFile
	}
	if !set["log-level"] {
		*logLevel = cfg.LogLevel
	}
	if !set["pretty"] {
		*prettyLogs = cfg.LogPretty
	}
	logger.SetGlobalLogger(logger.New(logger.Config{Level: *logLevel, Pretty: *prettyLogs}))
}

// loadPolicy reads the policy file, or returns the default policy.
func loadPolicy() (collateral.Policy, error) {
	p, err := collateral.LoadPolicy(*policyFile)
	if err != nil {
		return collateral.Policy{}, err
	}
	if *policyFile != "" {
		log.Debug().Str("file", *policyFile).Msg("policy loaded")
	}
	return p, nil
}

// loadAssets reads the assets file, or returns the reference collection.
func loadAssets(p collateral.Policy) ([]collateral.Asset, error) {
	if *assetsFile == "" {
		log.Debug().Msg("no assets file, using the reference collection")
		return collateral.ReferenceAssets(now()), nil
	}
	f, err := os.Open(*assetsFile)
	if err != nil {
		return nil, fmt.Errorf("load error: cannot open assets file %q: %w", *assetsFile, err)
	}
	defer f.Close()

	assets, err := collateral.ImportAssets(f, collateral.ImportOptions{Policy: &p, Now: now})
	if err != nil {
		return nil, fmt.Errorf("load error: %q: %w", *assetsFile, err)
	}
	log.Info().Str("file", *assetsFile).Int("count", len(assets)).Msg("assets loaded")
	return assets, nil
}

// load reads both the policy and the assets.
func load() (collateral.Policy, []collateral.Asset, error) {
	p, err := loadPolicy()
	if err != nil {
		return p, nil, err
	}
	assets, err := loadAssets(p)
	return p, assets, err
}

// printMarkdown prints md to stdout, rendered for the terminal when stdout is one.
func printMarkdown(md string) {
	f, ok := stdout.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	log.Warn().Err(err).Msg("cannot render markdown, printing it raw")
	fmt.Fprint(stdout, md)
}
