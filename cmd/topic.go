package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/collateral/docs"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the ltv documentation" }
func (*topicCmd) Usage() string {
	return `ltv topic [-list] [<topic>...]

  Prints the documentation topics in the order given, each once. Without
  a topic it prints the readme, '*' expands to every topic.

  -list prints the available topics and their titles instead.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List the available topics with their title.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.list {
		index, err := topicIndex()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(index)
		return subcommands.ExitSuccess
	}

	names, err := topicNames(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	log.Debug().Strs("topics", names).Msg("showing documentation")

	doc, err := docs.GetTopics(names...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}

// topicNames expands '*' and drops repeated topics. All names are checked
// before anything is printed.
func topicNames(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{"readme"}, nil
	}
	all, err := docs.GetAllTopics()
	if err != nil {
		return nil, err
	}
	var names []string
	for _, arg := range args {
		expanded := []string{arg}
		if arg == docs.AllTopics {
			expanded = all
		} else if arg != "readme" && !slices.Contains(all, arg) {
			return nil, fmt.Errorf("%w %q, available topics: %s", docs.ErrUnknownTopic, arg, strings.Join(all, ", "))
		}
		for _, name := range expanded {
			if !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	return names, nil
}

// topicIndex lists every topic with the title of its first heading.
func topicIndex() (string, error) {
	all, err := docs.GetAllTopics()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("# Topics\n\n")
	for _, name := range all {
		content, err := docs.GetTopic(name)
		if err != nil {
			return "", err
		}
		title, _, _ := strings.Cut(content, "\n")
		fmt.Fprintf(&b, "* `%s`: %s\n", name, strings.TrimSpace(strings.TrimPrefix(title, "#")))
	}
	return b.String(), nil
}
