package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	app     *App
	file    string
	path    string
	income  bool
	expense bool
	head    int
	tail    int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of an entries file" }
func (*txCmd) Usage() string {
	return `bt tx [-f <entries>] [-path <jsonpath>] [-income | -expense] [-head <n> | -tail <n>]

  Lists transactions in the order they were recorded, with options for
  filtering and limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "-", "Entries file (JSONL), '-' for the standard input.")
	f.StringVar(&p.path, "path", "", "jsonpath selecting the entries when the file is a JSON document.")
	f.BoolVar(&p.income, "income", false, "Show only income transactions.")
	f.BoolVar(&p.expense, "expense", false, "Show only expense transactions.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a := p.app
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(a.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	if p.income && p.expense {
		fmt.Fprintf(a.Stderr, "Error: %v.\n", errBothFilters)
		return subcommands.ExitUsageError
	}

	ledger, err := a.loadLedger(p.file, p.path)
	if err != nil {
		return a.fail("Error: %v", err)
	}

	accept := budget.AcceptAll
	switch {
	case p.income:
		accept = budget.AcceptIncome
	case p.expense:
		accept = budget.AcceptExpense
	}

	var transactions []budget.Transaction
	for tx := range ledger.Transactions(accept) {
		transactions = append(transactions, tx)
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	a.printMarkdown(renderer.Transactions(transactions, ledger.Currency()))
	return subcommands.ExitSuccess
}
