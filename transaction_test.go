package budget

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestTransaction_Label(t *testing.T) {
	if got := NewTransaction("Salary", A(1000), true).Label(); got != "Income" {
		t.Errorf("Label() = %q, want %q", got, "Income")
	}
	if got := NewTransaction("Rent", A(1200), false).Label(); got != "Expense" {
		t.Errorf("Label() = %q, want %q", got, "Expense")
	}
}

func TestTransaction_Accessors(t *testing.T) {
	tx := NewExpense("", A(3.5))
	if tx.Description() != "" {
		t.Errorf("Description() = %q, want empty", tx.Description())
	}
	if !tx.Amount().Equal(A(3.5)) {
		t.Errorf("Amount() = %s, want 3.5", tx.Amount())
	}
	if tx.IsIncome() {
		t.Error("IsIncome() = true, want false")
	}
	if !tx.Signed().Equal(A(-3.5)) {
		t.Errorf("Signed() = %s, want -3.5", tx.Signed())
	}
	if !NewIncome("x", A(2)).Signed().Equal(A(2)) {
		t.Error("Signed() of an income is not its amount")
	}
}

func TestNewTransaction_NoValidation(t *testing.T) {
	// construction is unconditional, the caller owns the invariant.
	tx := NewTransaction("oops", A(-5), false)
	if !tx.Amount().Equal(A(-5)) {
		t.Errorf("Amount() = %s, want -5", tx.Amount())
	}
	if err := tx.Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("Validate() = %v, want %v", err, ErrInvalidAmount)
	}
}

func TestValidTransaction(t *testing.T) {
	if _, err := ValidTransaction("Rent", A(-1), false); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("ValidTransaction(-1) error = %v, want %v", err, ErrInvalidAmount)
	}
	tx, err := ValidTransaction("Rent", A(0), false)
	if err != nil {
		t.Fatalf("ValidTransaction(0) unexpected error: %v", err)
	}
	if !tx.Equal(NewExpense("Rent", A(0))) {
		t.Errorf("ValidTransaction(0) = %v", tx)
	}
}

func TestTransaction_JSON(t *testing.T) {
	testCases := []struct {
		name string
		tx   Transaction
		json string
	}{
		{"income", NewIncome("Salary", A(1000)), `{"type":"income","description":"Salary","amount":1000}`},
		{"expense", NewExpense("Rent", A(1200.5)), `{"type":"expense","description":"Rent","amount":1200.5}`},
		{"no description", NewExpense("", A(3)), `{"type":"expense","amount":3}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := json.Marshal(tc.tx)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(b) != tc.json {
				t.Errorf("Marshal() = %s, want %s", b, tc.json)
			}

			var got Transaction
			if err := json.Unmarshal([]byte(tc.json), &got); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if !got.Equal(tc.tx) {
				t.Errorf("Unmarshal() = %v, want %v", got, tc.tx)
			}
		})
	}
}

func TestTransaction_UnmarshalErrors(t *testing.T) {
	testCases := []struct {
		name    string
		json    string
		wantErr error
	}{
		{"negative amount", `{"type":"expense","amount":-3}`, ErrInvalidAmount},
		{"missing amount", `{"type":"expense"}`, ErrInvalidAmount},
		{"unknown type", `{"type":"transfer","amount":3}`, ErrUnknownType},
		{"missing type", `{"amount":3}`, ErrUnknownType},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var tx Transaction
			err := json.Unmarshal([]byte(tc.json), &tx)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("Unmarshal(%s) error = %v, want %v", tc.json, err, tc.wantErr)
			}
		})
	}
}

func TestTransaction_EqualAndString(t *testing.T) {
	rent := NewExpense("Rent", MustParseAmount("1200.00"))
	if !rent.Equal(NewExpense("Rent", A(1200))) {
		t.Error("Equal should compare amounts numerically")
	}
	if rent.Equal(NewIncome("Rent", A(1200))) {
		t.Error("Equal should compare the direction")
	}
	if rent.Equal(NewExpense("Flat", A(1200))) {
		t.Error("Equal should compare the description")
	}

	testCases := []struct {
		tx   Transaction
		want string
	}{
		{NewExpense("Rent", A(1200)), `Expense 1200 "Rent"`},
		{NewIncome("", A(2.5)), "Income 2.5"},
	}
	for _, tc := range testCases {
		if got := tc.tx.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
