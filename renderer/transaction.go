package renderer

import (
	"strconv"

	"github.com/etnz/budget"
)

// transactionRow is a transaction ready to be printed.
type transactionRow struct {
	Index       string
	Label       string
	Description string
	Amount      string
}

// transactionsView is the data for the transactions template.
type transactionsView struct {
	Rows     []transactionRow
	Income   string
	Expenses string
}

// Transaction renders a transaction to a single line of text.
func Transaction(tx budget.Transaction, currency string) string {
	if tx.Description() == "" {
		return tx.Label() + " of " + tx.Amount().Format(currency)
	}
	return tx.Label() + " of " + tx.Amount().Format(currency) + ": " + tx.Description()
}

// Transactions renders a list of transactions as a markdown table.
// Numbering follows the order of txs, starting at 1.
func Transactions(txs []budget.Transaction, currency string) string {
	view := transactionsView{Rows: make([]transactionRow, 0, len(txs))}
	var income, expenses budget.Amount
	for i, tx := range txs {
		view.Rows = append(view.Rows, transactionRow{
			Index:       strconv.Itoa(i + 1),
			Label:       tx.Label(),
			Description: escape(tx.Description()),
			Amount:      tx.Signed().Format(currency),
		})
		if tx.IsIncome() {
			income = income.Add(tx.Amount())
		} else {
			expenses = expenses.Add(tx.Amount())
		}
	}
	view.Income = income.Format(currency)
	view.Expenses = expenses.Format(currency)

	partials := map[string]string{
		"transactions_table": "transactions_table.md",
	}
	if len(txs) == 0 {
		partials["transactions_table"] = "transactions_empty.md"
	}
	return renderTemplate("transactions", "transactions.md", partials, view)
}
