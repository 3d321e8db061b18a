package cashbook

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// this file contains functions to handle the JSONL transaction format.
//
// Each line is a JSON object: {"command":"income","date":"2025-01-15","amount":1000,"note":"salary"}
// 'command' is either "income" or "expense", 'date' can be omitted (today) and 'note' is optional.

// EncodeTransaction writes a single transaction as a JSON line.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	jsonData, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	// Write the JSON data followed by a newline to create the JSONL format.
	if _, err := w.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger writes all transactions of the ledger in insertion order, one JSON line each.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	for tx := range ledger.All() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTransactions reads a stream of JSONL transactions into a new Ledger.
//
// Empty lines are skipped. Decoding stops at the first invalid line, and the
// error names its line number.
func DecodeTransactions(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue // Skip empty lines
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return nil, fmt.Errorf("line %d: cannot decode transaction %q: %w", lineNumber, string(line), err)
		}
		ledger.Add(tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading transactions: %w", err)
	}
	return ledger, nil
}

// SelectTransactions extracts transactions from a JSON document.
//
// path is a JSONPath expression (e.g. "$.entries[*]") that must select
// either a list of transaction objects or a single one.
func SelectTransactions(doc []byte, path string) (*Ledger, error) {
	dec := json.NewDecoder(bytes.NewReader(doc))
	dec.UseNumber() // keep amounts digits untouched
	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("invalid JSON document: %w", err)
	}

	selected, err := jsonpath.Get(path, root)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}

	var items []any
	switch v := selected.(type) {
	case []any:
		items = v
	case map[string]any:
		items = []any{v}
	default:
		return nil, fmt.Errorf("%q selects a %T, want a list of transactions", path, selected)
	}

	ledger := NewLedger()
	for i, item := range items {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		var tx Transaction
		if err := json.Unmarshal(raw, &tx); err != nil {
			return nil, fmt.Errorf("item %d: cannot decode transaction %s: %w", i, raw, err)
		}
		ledger.Add(tx)
	}
	return ledger, nil
}
