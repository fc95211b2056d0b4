package budget

import "testing"

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("field order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("type", "income")
		w.Append("description", "Salary")
		w.Append("amount", A(1000))
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"type":"income","description":"Salary","amount":1000}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("optional fields", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("a", 0) // a zero value is still added by Append.
		w.Optional("b", "")
		w.Optional("c", 0)
		w.Optional("d", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"a":0,"d":"hello"}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("marshal error is sticky", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("bad", make(chan int))
		w.Append("a", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("expected an error, got nil")
		}
	})
}
