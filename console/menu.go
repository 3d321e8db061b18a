package console

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
)

// Menu is the numbered text menu front end.
type Menu struct {
	*Session
}

// NewMenu creates a menu session reading user input from in and writing to out.
func NewMenu(in io.Reader, out io.Writer) *Menu {
	return &Menu{Session: NewSession(in, out)}
}

// Run loops over the menu until the user exits, the input ends or ctx is done.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.printMenu()
		choice, err := m.readInt(ctx, "Choose menu: ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case 1:
			err = m.addTransaction(ctx, cashbook.Income)
		case 2:
			err = m.addTransaction(ctx, cashbook.Expense)
		case 3:
			m.listAll()
		case 4:
			m.showSummary()
		case 0:
			m.printf("Exit program\n")
			return nil
		default:
			m.printf("Invalid menu\n")
		}
		if err != nil {
			return endOfInput(err)
		}

		if _, err := m.readLine(ctx, "\nPress Enter to continue..."); err != nil {
			return endOfInput(err)
		}
	}
}

func (m *Menu) printMenu() {
	m.printf("\n======= Income & Expense System =======\n")
	m.printf("1) Add Income\n")
	m.printf("2) Add Expense\n")
	m.printf("3) Show All Transactions\n")
	m.printf("4) Show Summary\n")
	m.printf("0) Exit\n")
}

// readInt prompts until an integer is typed.
func (m *Menu) readInt(ctx context.Context, prompt string) (int, error) {
	for {
		line, err := m.readLine(ctx, prompt)
		if err != nil {
			return 0, err
		}
		if i, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
			return i, nil
		}
		m.printf("Please enter a valid number\n")
	}
}

func (m *Menu) addTransaction(ctx context.Context, kind cashbook.Kind) error {
	m.printf("\n-- Add %s --\n", kind.Title())
	amount, err := m.readAmount(ctx, "Amount (+): ")
	if err != nil {
		return err
	}
	note, err := m.readLine(ctx, "Note: ")
	if err != nil {
		return err
	}
	// readAmount already validated the amount.
	_, err = m.add(kind, amount, note)
	return err
}

func (m *Menu) listAll() {
	m.printf("\n-- All Transactions --\n")
	renderer.Transactions(m.out, m.Ledger.Items())
}

func (m *Menu) showSummary() {
	m.printf("\n-- Summary --\n")
	renderer.Summary(m.out, m.Ledger.Summary())
}
