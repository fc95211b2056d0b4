package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	app    *App
	file   string
	path   string
	json   bool
	alerts bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the budget summary of an entries file" }
func (*summaryCmd) Usage() string {
	return `bt summary [-f <entries>] [-path <jsonpath>] [-json] [-alerts]

  Displays total income, total expenses, balance and a suggestion.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "-", "Entries file (JSONL), '-' for the standard input.")
	f.StringVar(&c.path, "path", "", "jsonpath selecting the entries when the file is a JSON document.")
	f.BoolVar(&c.json, "json", false, "Print the summary as a JSON object.")
	f.BoolVar(&c.alerts, "alerts", false, "List the alerts raised while adding the entries.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a := c.app

	var alerts []budget.Alert
	ledger, err := a.loadLedger(c.file, c.path, budget.WithAlert(func(al budget.Alert) {
		alerts = append(alerts, al)
	}))
	if err != nil {
		return a.fail("Error: %v", err)
	}
	summary := ledger.Summary()

	if c.json {
		if err := json.NewEncoder(a.Stdout).Encode(summary); err != nil {
			return a.fail("Error encoding summary: %v", err)
		}
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString(renderer.Summary(summary))
	if c.alerts && len(alerts) > 0 {
		b.WriteString("\n## Alerts\n\n")
		for _, al := range alerts {
			b.WriteString(renderer.Alert(al))
			b.WriteString("\n")
		}
	}
	a.printMarkdown(b.String())
	return subcommands.ExitSuccess
}
