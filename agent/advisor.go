package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/renderer"
	"google.golang.org/genai"
)

// DefaultModel is used when NewAdvisor is given an empty model name.
const DefaultModel = "gemini-2.5-flash"

const instruction = `
You are a personal budget advisor. The user recorded income and expense
transactions in a ledger, use the Tools to read them.

Stay factual: quote the totals from the tools, never invent transactions.
Keep answers short and practical, in markdown.
`

// NewAdvisor creates the expert in charge of the ledger.
func NewAdvisor(ledger *budget.Ledger, model string) *Expert {
	if model == "" {
		model = DefaultModel
	}
	lib := Tools(ledger)
	return &Expert{
		Name:        "Advisor",
		Description: "A personal budget advisor with access to the user's ledger.",
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction + "\n" + Prompt(ledger.Summary())}}},
		},
		Library: NewLibrary(lib),
	}
}

// Prompt describes a summary to ground the advisor.
func Prompt(s budget.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The ledger holds %d transaction(s), amounts in %s.\n", s.Count, s.Currency)
	fmt.Fprintf(&b, "Total income: %s\n", s.Income.Format(s.Currency))
	fmt.Fprintf(&b, "Total expenses: %s\n", s.Expenses.Format(s.Currency))
	fmt.Fprintf(&b, "Balance: %s\n", s.Balance.Format(s.Currency))
	fmt.Fprintf(&b, "Standard suggestion: %s\n", s.Suggestion.Message())
	return b.String()
}

// Tools returns the functions the advisor can call on the ledger.
func Tools(ledger *budget.Ledger) []*Func {
	return []*Func{
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Summary",
				Description: "Summary returns the total income, total expenses, balance and standard suggestion of the ledger, as markdown.",
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown summary of the ledger.",
				},
			},
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				return renderer.Summary(ledger.Summary()), nil
			},
		},
		{
			Decl: &genai.FunctionDeclaration{
				Name:        "Transactions",
				Description: "Transactions lists the transactions of the ledger in the order they were recorded, as a markdown table.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"type": {
							Type:        genai.TypeString,
							Description: "Restrict to 'income' or 'expense' transactions. All by default.",
							Enum:        []string{"income", "expense"},
						},
					},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of transactions.",
				},
			},
			Func: func(ctx context.Context, args map[string]any) (any, error) {
				accept, err := filterArg(args)
				if err != nil {
					return nil, err
				}
				var txs []budget.Transaction
				for tx := range ledger.Transactions(accept) {
					txs = append(txs, tx)
				}
				return renderer.Transactions(txs, ledger.Currency()), nil
			},
		},
	}
}

// filterArg reads the optional "type" argument.
func filterArg(args map[string]any) (budget.Filter, error) {
	v, ok := args["type"]
	if !ok || v == nil {
		return budget.AcceptAll, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("invalid type got %T, expected string", v)
	}
	switch budget.TransactionType(s) {
	case "":
		return budget.AcceptAll, nil
	case budget.TypeIncome:
		return budget.AcceptIncome, nil
	case budget.TypeExpense:
		return budget.AcceptExpense, nil
	default:
		return nil, fmt.Errorf("%w: %q", budget.ErrUnknownType, s)
	}
}
