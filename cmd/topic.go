package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fintrack/docs"
	"github.com/etnz/fintrack/renderer"
	"github.com/google/subcommands"
)

type topicCmd struct {
	all bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "read the documentation" }
func (*topicCmd) Usage() string {
	return `ft topic [-all] [<topic>...]

  Prints the documentation of each topic, one after the other. Without topic,
  lists the topics and what they cover.

Usage Examples:
$ ft topic
$ ft topic piggybanks storage
$ ft topic -all
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "all", false, "Print every topic")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	switch {
	case c.all && len(topics) > 0:
		fmt.Fprintln(os.Stderr, "Error: -all prints every topic, do not name any")
		return subcommands.ExitUsageError
	case c.all:
		topics = []string{"*"}
	case len(topics) == 0:
		summaries, err := docs.Summaries()
		if err != nil {
			return fail(err)
		}
		printMarkdown(renderer.TopicsMarkdown(summaries))
		return subcommands.ExitSuccess
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v, 'ft topic' lists them\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
