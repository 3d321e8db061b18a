// Package cashbook provides the types and functions to keep a personal
// income and expense ledger.
//
// The core functionalities include:
//   - Transactions: a dated Income or Expense entry with a non-negative
//     amount and a free text note, immutable once created.
//   - Ledger: an append-only, in-memory record of transactions in the order
//     they were entered, with aggregate queries (total income, total expense
//     and balance).
//   - Input helpers: parsing of amounts typed by a user, and decoding of
//     transactions from JSONL streams or JSON documents.
//
// This package serves as the foundational logic for the `cbk` command-line
// tool. Front ends (see package console) only read user input, call into the
// ledger and format its outputs.
package cashbook
