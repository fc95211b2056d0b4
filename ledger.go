package budget

import (
	"iter"
	"slices"
)

// DefaultCurrency is the display currency of a ledger created without
// WithCurrency.
const DefaultCurrency = "USD"

// AlertMessage is the message carried by every Alert.
const AlertMessage = "Your balance is negative! Consider adjusting your budget."

// Alert is emitted by Ledger.Add when the balance is negative right after
// a transaction has been appended.
type Alert struct {
	Transaction Transaction // Transaction is the one that was just added.
	Balance     Amount      // Balance is the ledger balance after the addition.
	Currency    string
}

// Message returns the alert text.
func (a Alert) Message() string { return AlertMessage }

// AlertFunc receives alerts from a ledger.
type AlertFunc func(Alert)

// Option configures a Ledger.
type Option func(*Ledger)

// WithAlert registers a function called for each alert. It can be used several
// times.
func WithAlert(f AlertFunc) Option {
	return func(l *Ledger) {
		if f != nil {
			l.alerts = append(l.alerts, f)
		}
	}
}

// WithCurrency sets the currency code used to display amounts.
func WithCurrency(code string) Option {
	return func(l *Ledger) {
		if code != "" {
			l.currency = code
		}
	}
}

// Ledger represents the list of transactions recorded during a session.
//
// A Ledger is append-only and keeps transactions in insertion order. Totals
// are never cached: every query derives them from the transactions.
type Ledger struct {
	transactions []Transaction
	currency     string
	alerts       []AlertFunc
}

// NewLedger creates an empty ledger.
func NewLedger(opts ...Option) *Ledger {
	l := &Ledger{
		transactions: make([]Transaction, 0),
		currency:     DefaultCurrency,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Currency returns the display currency code.
func (l *Ledger) Currency() string { return l.currency }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Add appends transactions to the ledger, one at a time. After each append the
// balance is computed again and, if it is negative, an Alert is sent to every
// registered AlertFunc.
func (l *Ledger) Add(txs ...Transaction) {
	for _, tx := range txs {
		l.transactions = append(l.transactions, tx)
		l.checkForAlert(tx)
	}
}

func (l *Ledger) checkForAlert(tx Transaction) {
	balance := l.Balance()
	if !balance.IsNegative() {
		return
	}
	alert := Alert{Transaction: tx, Balance: balance, Currency: l.currency}
	for _, f := range l.alerts {
		f(alert)
	}
}

// Filter selects transactions.
type Filter func(Transaction) bool

// AcceptAll is a Filter that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// AcceptIncome is a Filter that accepts income transactions only.
func AcceptIncome(tx Transaction) bool { return tx.IsIncome() }

// AcceptExpense is a Filter that accepts expense transactions only.
func AcceptExpense(tx Transaction) bool { return !tx.IsIncome() }

// Transactions iterates, in insertion order, over the transactions accepted
// by the filter.
func (l *Ledger) Transactions(accept Filter) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			if accept(tx) && !yield(tx) {
				return
			}
		}
	}
}

// All returns a copy of all the transactions in insertion order.
func (l *Ledger) All() []Transaction {
	return slices.Clone(l.transactions)
}

// sum adds up the amounts of the transactions accepted by the filter.
func (l *Ledger) sum(accept Filter) Amount {
	var total Amount
	for tx := range l.Transactions(accept) {
		total = total.Add(tx.Amount())
	}
	return total
}

// TotalIncome returns the sum of all income amounts, 0 for an empty ledger.
func (l *Ledger) TotalIncome() Amount { return l.sum(AcceptIncome) }

// TotalExpenses returns the sum of all expense amounts, 0 for an empty ledger.
func (l *Ledger) TotalExpenses() Amount { return l.sum(AcceptExpense) }

// Balance returns total income minus total expenses.
func (l *Ledger) Balance() Amount {
	return l.TotalIncome().Sub(l.TotalExpenses())
}

// Suggestion returns the advice matching the sign of the balance.
func (l *Ledger) Suggestion() Suggestion {
	return SuggestionFor(l.Balance())
}

// Summary returns the totals of the ledger.
func (l *Ledger) Summary() Summary {
	income, expenses := l.TotalIncome(), l.TotalExpenses()
	balance := income.Sub(expenses)
	return Summary{
		Count:      len(l.transactions),
		Currency:   l.currency,
		Income:     income,
		Expenses:   expenses,
		Balance:    balance,
		Suggestion: SuggestionFor(balance),
	}
}
