// Package cmd implements the CLI application to track a budget.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/budget"
	"github.com/etnz/budget/config"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// App holds what the subcommands share: configuration, logger and standard
// streams.
type App struct {
	Config config.Config
	Log    zerolog.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewApp creates an App on the process standard streams.
func NewApp(c config.Config, log zerolog.Logger) *App {
	return &App{
		Config: c,
		Log:    log,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Command is a subcommand and the group it is listed in.
type Command struct {
	subcommands.Command
	Group string
}

// Commands returns all the subcommands.
func (a *App) Commands() []Command {
	return []Command{
		{&trackCmd{app: a}, "transactions"},
		{&fmtCmd{app: a}, "transactions"},
		{&summaryCmd{app: a}, "reports"},
		{&txCmd{app: a}, "reports"},
		{&adviseCmd{app: a}, "reports"},
		{&topicCmd{app: a}, "help"},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func (a *App) Register(c *subcommands.Commander) {
	for _, cmd := range a.Commands() {
		c.Register(cmd.Command, cmd.Group)
	}
}

// NewLedger creates an empty ledger in the configured currency.
//
// Alerts are logged. When printAlerts is set they are also printed on
// Stdout, as during an interactive session.
func (a *App) NewLedger(printAlerts bool, extra ...budget.Option) *budget.Ledger {
	opts := []budget.Option{
		budget.WithCurrency(a.Config.Currency),
		budget.WithAlert(func(al budget.Alert) {
			a.Log.Warn().
				Str("description", al.Transaction.Description()).
				Stringer("amount", al.Transaction.Amount()).
				Stringer("balance", al.Balance).
				Msg("negative balance")
		}),
	}
	if printAlerts {
		opts = append(opts, budget.WithAlert(func(al budget.Alert) {
			fmt.Fprintf(a.Stdout, "Alert: %s\n", al.Message())
		}))
	}
	return budget.NewLedger(append(opts, extra...)...)
}

// decodeEntries reads transactions from filename, "-" being the standard
// input. With a non empty path the file is a JSON document and entries are
// selected by that jsonpath, otherwise it is a JSONL file.
func (a *App) decodeEntries(filename, path string) ([]budget.Transaction, error) {
	var r io.Reader
	if filename == "-" {
		r = a.Stdin
	} else {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("cannot open entries: %w", err)
		}
		defer f.Close()
		r = f
	}

	var (
		txs []budget.Transaction
		err error
	)
	if path != "" {
		txs, err = budget.DecodeJSONPath(r, path)
	} else {
		txs, err = budget.DecodeTransactions(r)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot decode %q: %w", filename, err)
	}
	a.Log.Debug().Str("file", filename).Int("count", len(txs)).Msg("entries decoded")
	return txs, nil
}

// loadLedger decodes entries into a new ledger.
func (a *App) loadLedger(filename, path string, opts ...budget.Option) (*budget.Ledger, error) {
	txs, err := a.decodeEntries(filename, path)
	if err != nil {
		return nil, err
	}
	ledger := a.NewLedger(false, opts...)
	ledger.Add(txs...)
	return ledger, nil
}

// fail prints an error and returns the failure status.
func (a *App) fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(a.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

// printMarkdown prints md on Stdout, styled by glamour unless the
// configured style is "raw".
func (a *App) printMarkdown(md string) {
	style := a.Config.Style
	if style == "raw" {
		fmt.Fprint(a.Stdout, md)
		return
	}

	out, err := renderMarkdown(md, style)
	if err != nil {
		a.Log.Debug().Err(err).Msg("markdown rendering failed, printing raw")
		fmt.Fprint(a.Stdout, md)
		return
	}
	fmt.Fprint(a.Stdout, out)
}

func renderMarkdown(md, style string) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(100)}
	if style == "" || style == "auto" {
		opts = append(opts, glamour.WithAutoStyle())
	} else {
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}

var errBothFilters = errors.New("-income and -expense cannot be used together")
