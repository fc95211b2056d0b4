package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budget/prompt"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

// trackCmd holds the flags for the 'track' subcommand.
type trackCmd struct {
	app  *App
	file string
	path string
}

func (*trackCmd) Name() string     { return "track" }
func (*trackCmd) Synopsis() string { return "record transactions interactively and print a summary" }
func (*trackCmd) Usage() string {
	return `bt track [-f <entries>] [-path <jsonpath>]

  Asks for transactions one by one: description, amount and whether it is an
  income. An alert is printed each time the balance becomes negative.
  When done, prints the budget summary and a suggestion.

  With -f, entries are loaded from a file before the first question.
`
}

func (c *trackCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Entries file to start from (JSONL). See 'bt topic entries'.")
	f.StringVar(&c.path, "path", "", "jsonpath selecting the entries when -f is a JSON document.")
}

func (c *trackCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a := c.app
	if c.file == "-" {
		fmt.Fprintln(a.Stderr, "Error: -f cannot read the standard input, it is used for questions.")
		return subcommands.ExitUsageError
	}

	ledger := a.NewLedger(true)
	if c.file != "" {
		txs, err := a.decodeEntries(c.file, c.path)
		if err != nil {
			return a.fail("Error loading entries: %v", err)
		}
		ledger.Add(txs...)
		fmt.Fprintf(a.Stdout, "Loaded %d transaction(s) from %s\n", len(txs), c.file)
	}

	session := prompt.New(a.Stdout, a.Stdin).WithLogger(a.Log)
	if err := session.Run(ctx, ledger); err != nil {
		return a.fail("Error reading transactions: %v", err)
	}

	fmt.Fprint(a.Stdout, "\n"+ledger.Summary().String())
	fmt.Fprint(a.Stdout, renderer.Suggestion(ledger.Suggestion()))
	return subcommands.ExitSuccess
}
