// Package prompt implements the interactive console session that collects
// transactions from a user and records them in a ledger.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/budget"
	"github.com/rs/zerolog"
)

// Prompts written to the user.
const (
	AskDescription = "Enter transaction description: "
	AskAmount      = "Enter transaction amount: $"
	AskIncome      = "Is this an income transaction? (Y/N): "
	AskAnother     = "Do you want to add another transaction? (Y/N): "

	InvalidAmount = "Invalid amount. Please enter a positive number: $"
	InvalidYesNo  = "Invalid input. Please enter 'Y' for Yes or 'N' for No: "
)

// errEnd signals the end of input while a question was pending.
var errEnd = errors.New("end of input")

// Session reads transactions from r, writing prompts to w.
type Session struct {
	w   io.Writer
	r   *bufio.Reader
	log zerolog.Logger

	// pending receives the line being read, if any. A read abandoned on
	// cancellation is picked up by the next readLine.
	pending chan readResult
}

type readResult struct {
	line string
	err  error
}

// New creates a new Session.
//
// It takes an io.Writer for prompts (e.g., os.Stdout) and an io.Reader for
// user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader) *Session {
	return &Session{
		w:   w,
		r:   bufio.NewReader(r),
		log: zerolog.Nop(),
	}
}

// WithLogger sets the logger used to trace recorded transactions.
func (s *Session) WithLogger(log zerolog.Logger) *Session {
	s.log = log
	return s
}

// Run asks for transactions and adds them to the ledger until the user
// declines to add another one.
//
// The end of input also ends the session cleanly, a partially entered
// transaction is then discarded. Canceling ctx interrupts a pending question
// and returns ctx.Err().
func (s *Session) Run(ctx context.Context, ledger *budget.Ledger) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tx, err := s.collect(ctx)
		if errors.Is(err, errEnd) {
			s.log.Debug().Msg("end of input, session closed")
			return nil
		}
		if err != nil {
			return err
		}
		ledger.Add(tx)
		s.log.Debug().
			Str("type", string(tx.Type())).
			Str("description", tx.Description()).
			Stringer("amount", tx.Amount()).
			Msg("transaction recorded")

		another, err := s.askYesNo(ctx, AskAnother)
		if errors.Is(err, errEnd) {
			return nil
		}
		if err != nil {
			return err
		}
		if !another {
			return nil
		}
	}
}

// collect asks for one transaction.
func (s *Session) collect(ctx context.Context) (budget.Transaction, error) {
	fmt.Fprint(s.w, "\n"+AskDescription)
	description, err := s.readLine(ctx)
	if err != nil {
		return budget.Transaction{}, err
	}

	amount, err := s.askAmount(ctx)
	if err != nil {
		return budget.Transaction{}, err
	}

	income, err := s.askYesNo(ctx, AskIncome)
	if err != nil {
		return budget.Transaction{}, err
	}

	return budget.ValidTransaction(description, amount, income)
}

// askAmount prompts until a non-negative amount is entered.
func (s *Session) askAmount(ctx context.Context) (budget.Amount, error) {
	fmt.Fprint(s.w, AskAmount)
	for {
		line, err := s.readLine(ctx)
		if err != nil {
			return budget.Amount{}, err
		}
		amount, err := budget.ParseAmount(line)
		if err == nil {
			return amount, nil
		}
		s.log.Debug().Str("input", line).Msg("invalid amount")
		fmt.Fprint(s.w, InvalidAmount)
	}
}

// askYesNo prompts until a Y/y/N/n answer is entered.
func (s *Session) askYesNo(ctx context.Context, question string) (bool, error) {
	fmt.Fprint(s.w, question)
	for {
		line, err := s.readLine(ctx)
		if err != nil {
			return false, err
		}
		switch strings.TrimSpace(line) {
		case "Y", "y":
			return true, nil
		case "N", "n":
			return false, nil
		}
		fmt.Fprint(s.w, InvalidYesNo)
	}
}

// readLine reads a full line without its line ending.
// A last line without a line ending is still returned, errEnd comes after.
func (s *Session) readLine(ctx context.Context) (string, error) {
	if s.pending == nil {
		ch := make(chan readResult, 1)
		go func() {
			line, err := s.r.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
		s.pending = ch
	}

	var res readResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-s.pending:
		s.pending = nil
	}

	if res.err != nil {
		if res.err == io.EOF {
			if res.line != "" {
				return strings.TrimRight(res.line, "\r\n"), nil
			}
			return "", errEnd
		}
		return "", res.err
	}
	return strings.TrimRight(res.line, "\r\n"), nil
}
