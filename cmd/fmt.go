package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/budget"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	app  *App
	file string
	path string
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates entries and prints them in canonical form"
}
func (*fmtCmd) Usage() string {
	return `bt fmt [-f <entries>] [-path <jsonpath>]

  Validates entries and writes them on the standard output in the canonical
  JSONL format. Invalid entries are reported with their line number.
  With -path, converts the entries selected in a JSON document to JSONL.

Usage Examples:
# Normalizes an entries file.
$ bt fmt -f entries.jsonl > clean.jsonl

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.file, "f", "-", "Entries file (JSONL), '-' for the standard input.")
	f.StringVar(&p.path, "path", "", "jsonpath selecting the entries when the file is a JSON document.")
}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a := p.app
	txs, err := a.decodeEntries(p.file, p.path)
	if err != nil {
		return a.fail("Error: %v", err)
	}
	if err := budget.EncodeTransactions(a.Stdout, txs...); err != nil {
		return a.fail("Error writing entries: %v", err)
	}
	fmt.Fprintf(a.Stderr, "%d transaction(s) formatted.\n", len(txs))
	return subcommands.ExitSuccess
}
