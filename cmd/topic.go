package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/budget/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	app  *App
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `bt topic [-list] [<topic>...]

Show documentation for the given topics, the readme by default.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "list", false, "List the available topics.")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a := c.app
	if c.list {
		topics, err := docs.GetAllTopics()
		if err != nil {
			return a.fail("Error listing topics: %v", err)
		}
		var b strings.Builder
		b.WriteString("# Topics\n\n")
		for _, topic := range topics {
			title, err := docs.Title(topic)
			if err != nil {
				return a.fail("Error reading topic %q: %v", topic, err)
			}
			fmt.Fprintf(&b, "* %s: %s\n", topic, title)
		}
		a.printMarkdown(b.String())
		return subcommands.ExitSuccess
	}

	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return a.fail("Error reading doc: %v", err)
	}
	a.printMarkdown(doc)
	return subcommands.ExitSuccess
}
