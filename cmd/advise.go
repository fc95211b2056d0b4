package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/budget/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// adviseCmd is the subcommand for the AI advisor.
type adviseCmd struct {
	app  *App
	file string
	path string
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "chat with an AI advisor about an entries file" }
func (*adviseCmd) Usage() string {
	return `bt advise -f <entries> [-path <jsonpath>] [<question>...]

  Starts an interactive session with an AI advisor that can read the
  transactions. Arguments are sent as the first question.
  Requires the GEMINI_API_KEY environment variable.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Entries file (JSONL).")
	f.StringVar(&c.path, "path", "", "jsonpath selecting the entries when the file is a JSON document.")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a := c.app
	if c.file == "" || c.file == "-" {
		fmt.Fprintln(a.Stderr, "Error: -f <entries> is required, the standard input is used for questions.")
		return subcommands.ExitUsageError
	}

	ledger, err := a.loadLedger(c.file, c.path)
	if err != nil {
		return a.fail("Error: %v", err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return a.fail("Error initializing Gemini's client: %v", err)
	}

	advisor := agent.NewAdvisor(ledger, a.Config.Model)
	a.Log.Debug().Str("model", advisor.ModelName).Int("transactions", ledger.Len()).Msg("starting advisor")

	var prompts []string
	if f.NArg() > 0 {
		prompts = append(prompts, strings.Join(f.Args(), " "))
	}
	if err := agent.New(a.Stdout, a.Stdin, advisor).Run(ctx, client, prompts...); err != nil {
		return a.fail("Advisor failed: %v", err)
	}
	return subcommands.ExitSuccess
}
