package budget

import "github.com/google/go-cmp/cmp"

// amountComparer lets cmp compare Amounts by value.
var amountComparer = cmp.Comparer(func(a, b Amount) bool { return a.Equal(b) })

// transactionComparer lets cmp compare Transactions by value.
var transactionComparer = cmp.Comparer(func(a, b Transaction) bool { return a.Equal(b) })

// inc and exp are helpers for tests to create transactions from constants.
func inc(description string, v float64) Transaction { return NewIncome(description, A(v)) }
func exp(description string, v float64) Transaction { return NewExpense(description, A(v)) }
