// Package budget provides the types to track a personal budget: a
// Transaction records one income or expense, a Ledger keeps them in order
// and derives the totals.
//
// The core functionalities include:
//   - Ledger Management: recording income and expense transactions in an
//     append-only, insertion ordered list.
//   - Aggregation: total income, total expenses and balance, always derived
//     from the recorded transactions.
//   - Alerts: a notification each time an addition leaves the balance
//     negative.
//   - Suggestions: a canned piece of advice based on the sign of the balance.
//   - Data Exchange: decoding entries from JSONL, or from any JSON document
//     with a jsonpath expression.
//
// This package serves as the foundational logic for the `bt` command-line
// tool. It performs no I/O on its own: rendering and prompting live in the
// renderer and prompt packages.
package budget
