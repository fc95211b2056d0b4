package budget

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// Entries are stored one JSON object per line (JSONL), e.g.
//
//	{"type":"income","description":"Salary","amount":1000}
//	{"type":"expense","description":"Rent","amount":1200}
//
// Blank lines are ignored.

// DecodeTransactions reads JSONL entries from r, in order.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return nil, fmt.Errorf("parse error on line %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read entries: %w", err)
	}
	return txs, nil
}

// EncodeTransaction writes a single transaction as a JSON line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	b, err := json.Marshal(tx)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// EncodeTransactions writes transactions as JSONL.
func EncodeTransactions(w io.Writer, txs ...Transaction) error {
	for _, tx := range txs {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeJSONPath reads a whole JSON document from r and decodes the entries
// selected by the jsonpath expression, like "$.data.entries[*]".
//
// The selection must be an object or a list of objects, each one in the same
// format as a JSONL line.
func DecodeJSONPath(r io.Reader, path string) ([]Transaction, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("not a correct json: %w", err)
	}

	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}

	// jsonpath returns either a list of answers or a single answer.
	jlist, ok := jval.([]any)
	if !ok {
		jlist = []any{jval}
	}

	txs := make([]Transaction, 0, len(jlist))
	for i, jobj := range jlist {
		if _, ok := jobj.(map[string]any); !ok {
			return nil, fmt.Errorf("entry #%d selected by %q is a %T, not an object", i, path, jobj)
		}
		raw, err := json.Marshal(jobj)
		if err != nil {
			return nil, fmt.Errorf("entry #%d selected by %q: %w", i, path, err)
		}
		var tx Transaction
		if err := json.Unmarshal(raw, &tx); err != nil {
			return nil, fmt.Errorf("entry #%d selected by %q: %w", i, path, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
