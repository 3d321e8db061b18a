// Package console implements the interactive front ends of the cashbook: a
// numbered text menu and a dialog loop. Both are thin shells around a
// cashbook.Ledger owned by a Session.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/date"
)

// InvalidAmountMessage is shown when the user types an amount that is not a non-negative number.
const InvalidAmountMessage = "Please enter a valid amount (>= 0)"

// Session holds the state of one interactive session: the ledger, and the
// streams to talk to the user.
//
// The ledger lives as long as the session and is discarded with it.
type Session struct {
	Ledger *cashbook.Ledger
	Logger *log.Logger // verbose diagnostics, discarded by default.

	in      *bufio.Scanner
	lines   chan string // fed by scan, closed at the end of input
	scanErr error       // set by scan before closing lines
	out     io.Writer
}

// NewSession creates a session with an empty ledger.
func NewSession(in io.Reader, out io.Writer) *Session {
	return &Session{
		Ledger: cashbook.NewLedger(),
		Logger: log.New(io.Discard, "", 0),
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// printf writes to the session output.
func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// readLine prints prompt and reads one line of input.
//
// It returns io.EOF when the input is exhausted, and ctx.Err() as soon as ctx
// is done, even while waiting for the user.
func (s *Session) readLine(ctx context.Context, prompt string) (string, error) {
	s.printf("%s", prompt)
	if s.lines == nil {
		s.lines = make(chan string)
		go s.scan()
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if err := ctx.Err(); err != nil {
			return "", err // the line arrived too late.
		}
		if !ok {
			if s.scanErr != nil {
				return "", fmt.Errorf("error reading input: %w", s.scanErr)
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// scan feeds s.lines with the input lines.
//
// A blocked read cannot be interrupted, so scan outlives a cancelled session
// until the next line or the end of input.
func (s *Session) scan() {
	defer close(s.lines)
	for s.in.Scan() {
		s.lines <- s.in.Text()
	}
	s.scanErr = s.in.Err()
}

// readAmount prompts until a valid non-negative amount is typed.
func (s *Session) readAmount(ctx context.Context, prompt string) (string, error) {
	for {
		line, err := s.readLine(ctx, prompt)
		if err != nil {
			return "", err
		}
		if _, err := cashbook.ParseAmount(line); err == nil {
			return line, nil
		}
		s.printf("%s\n", InvalidAmountMessage)
	}
}

// add parses amount, builds a transaction dated today and records it.
//
// Nothing is recorded if amount is invalid.
func (s *Session) add(kind cashbook.Kind, amount, note string) (cashbook.Transaction, error) {
	value, err := cashbook.ParseAmount(amount)
	if err != nil {
		return cashbook.Transaction{}, err
	}
	tx, err := cashbook.New(kind, date.Today(), value, note)
	if err != nil {
		return cashbook.Transaction{}, err
	}
	s.Ledger.Add(tx)
	s.Logger.Printf("recorded %v, ledger has %d transaction(s)", tx, s.Ledger.Len())
	return tx, nil
}

// endOfInput turns the end of input into a clean exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// normalize lower cases s and removes surrounding spaces, for matching user choices.
func normalize(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
