package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/budget"
	md "github.com/nao1215/markdown"
)

// Summary renders the summary of a ledger, including the suggestion.
func Summary(s budget.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Budget Summary")
	doc.PlainText(fmt.Sprintf("%d transaction(s) recorded.", s.Count))

	table := md.TableSet{
		Header: []string{"", "Amount"},
		Rows: [][]string{
			{"Total Income", s.Income.Format(s.Currency)},
			{"Total Expenses", s.Expenses.Format(s.Currency)},
			{md.Bold("Balance"), md.Bold(s.Balance.Format(s.Currency))},
		},
	}
	doc.Table(table)

	doc.H2("Suggestions")
	doc.PlainText(s.Suggestion.Message())

	return doc.String()
}

// Suggestion renders a suggestion on its own.
func Suggestion(s budget.Suggestion) string {
	return "Suggestions: " + s.Message() + "\n"
}

// Alert renders a negative balance alert.
func Alert(a budget.Alert) string {
	return fmt.Sprintf("> **Alert:** %s (balance %s after %q)\n",
		a.Message(), a.Balance.Format(a.Currency), a.Transaction.Description())
}
