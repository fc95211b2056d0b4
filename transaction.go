package budget

import (
	"encoding/json"
	"errors"
	"fmt"
)

// TransactionType is a typed string identifying the direction of a
// transaction in its JSON form.
type TransactionType string

// Transaction types.
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Labels returned by Transaction.Label.
const (
	LabelIncome  = "Income"
	LabelExpense = "Expense"
)

// ErrUnknownType is returned when decoding a transaction with a type that is
// neither income nor expense.
var ErrUnknownType = errors.New("unknown transaction type")

// Transaction is a single recorded income or expense.
//
// A Transaction is an immutable value: it has no setters and is copied around.
type Transaction struct {
	description string
	amount      Amount
	income      bool
}

// NewTransaction creates a transaction. It performs no validation, the caller
// is responsible for passing a non-negative amount. Use ValidTransaction to
// get the check.
func NewTransaction(description string, amount Amount, income bool) Transaction {
	return Transaction{description: description, amount: amount, income: income}
}

// NewIncome creates an income transaction.
func NewIncome(description string, amount Amount) Transaction {
	return NewTransaction(description, amount, true)
}

// NewExpense creates an expense transaction.
func NewExpense(description string, amount Amount) Transaction {
	return NewTransaction(description, amount, false)
}

// ValidTransaction creates a transaction and rejects negative amounts with
// ErrInvalidAmount.
func ValidTransaction(description string, amount Amount, income bool) (Transaction, error) {
	tx := NewTransaction(description, amount, income)
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

func (t Transaction) Description() string { return t.description }
func (t Transaction) Amount() Amount       { return t.amount }
func (t Transaction) IsIncome() bool       { return t.income }

// Label returns "Income" or "Expense".
func (t Transaction) Label() string {
	if t.income {
		return LabelIncome
	}
	return LabelExpense
}

// Type returns the JSON type of the transaction.
func (t Transaction) Type() TransactionType {
	if t.income {
		return TypeIncome
	}
	return TypeExpense
}

// Signed returns the effect of the transaction on the balance: the amount for
// an income, its opposite for an expense.
func (t Transaction) Signed() Amount {
	if t.income {
		return t.amount
	}
	return t.amount.Neg()
}

// Validate checks that the amount is not negative.
func (t Transaction) Validate() error {
	if t.amount.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidAmount, t.amount)
	}
	return nil
}

// Equal reports whether both transactions have the same description,
// direction and amount value. Amounts are compared numerically, 1.50 equals 1.5.
func (t Transaction) Equal(o Transaction) bool {
	return t.description == o.description && t.income == o.income && t.amount.Equal(o.amount)
}

// String returns the label, the amount and the quoted description if any,
// e.g. `Expense 1200 "Rent"`.
func (t Transaction) String() string {
	if t.description == "" {
		return fmt.Sprintf("%s %s", t.Label(), t.amount)
	}
	return fmt.Sprintf("%s %s %q", t.Label(), t.amount, t.description)
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("type", t.Type())
	w.Optional("description", t.description)
	w.Append("amount", t.amount)
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// The amount is mandatory and must not be negative.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		Type        TransactionType `json:"type"`
		Description string          `json:"description"`
		Amount      *Amount         `json:"amount"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	if temp.Amount == nil {
		return fmt.Errorf("%w: amount is missing", ErrInvalidAmount)
	}

	var income bool
	switch temp.Type {
	case TypeIncome:
		income = true
	case TypeExpense:
		income = false
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, temp.Type)
	}

	tx, err := ValidTransaction(temp.Description, *temp.Amount, income)
	if err != nil {
		return err
	}
	*t = tx
	return nil
}
