package budget

import (
	"fmt"
	"strings"
)

// Suggestion is a canned piece of advice derived from the sign of the balance.
type Suggestion int

const (
	// SaveOrInvest is suggested when the balance is zero or positive.
	SaveOrInvest Suggestion = iota
	// ReviewExpenses is suggested when the balance is negative.
	ReviewExpenses
)

// SuggestionFor returns SaveOrInvest for a non-negative balance and
// ReviewExpenses otherwise. The magnitude of the balance is not used.
func SuggestionFor(balance Amount) Suggestion {
	if balance.IsNegative() {
		return ReviewExpenses
	}
	return SaveOrInvest
}

// String returns a short identifier, also used in JSON.
func (s Suggestion) String() string {
	switch s {
	case SaveOrInvest:
		return "save-or-invest"
	case ReviewExpenses:
		return "review-expenses"
	default:
		return "unknown"
	}
}

// Message returns the advice given to the user.
func (s Suggestion) Message() string {
	switch s {
	case SaveOrInvest:
		return "You have a positive balance. Consider saving or investing some of it."
	case ReviewExpenses:
		return "Review your expenses, reduce unnecessary spending, and create a budget plan to increase your savings."
	default:
		return ""
	}
}

// ParseSuggestion parses the identifier returned by Suggestion.String.
func ParseSuggestion(s string) (Suggestion, error) {
	switch s {
	case "save-or-invest":
		return SaveOrInvest, nil
	case "review-expenses":
		return ReviewExpenses, nil
	default:
		return 0, fmt.Errorf("unknown suggestion: %q", s)
	}
}

// Summary is an at-a-glance overview of a ledger.
type Summary struct {
	Count      int    // Count is the number of transactions.
	Currency   string // Currency is the display currency code.
	Income     Amount
	Expenses   Amount
	Balance    Amount
	Suggestion Suggestion
}

// String returns the plain text report:
//
//	--- Budget Summary ---
//	Total Income: $1,000.00
//	Total Expenses: $1,200.00
//	Balance: -$200.00
func (s Summary) String() string {
	var b strings.Builder
	b.WriteString("--- Budget Summary ---\n")
	fmt.Fprintf(&b, "Total Income: %s\n", s.Income.Format(s.Currency))
	fmt.Fprintf(&b, "Total Expenses: %s\n", s.Expenses.Format(s.Currency))
	fmt.Fprintf(&b, "Balance: %s\n", s.Balance.Format(s.Currency))
	return b.String()
}

// MarshalJSON implements the json.Marshaler interface for Summary.
func (s Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("count", s.Count)
	w.Optional("currency", s.Currency)
	w.Append("income", s.Income)
	w.Append("expenses", s.Expenses)
	w.Append("balance", s.Balance)
	w.Append("suggestion", s.Suggestion.String())
	return w.MarshalJSON()
}
