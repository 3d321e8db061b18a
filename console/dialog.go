package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/cashbook"
	"github.com/etnz/cashbook/renderer"
)

var (
	dialogTitle = lipgloss.NewStyle().Bold(true)
	dialogBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	messageBox  = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(0, 1)
)

// Dialog actions, in display order.
var dialogActions = []string{"Add Income", "Add Expense", "Show All", "Show Summary", "Exit"}

// errCancel is returned by a dialog the user dismissed.
var errCancel = errors.New("dialog cancelled")

// Dialog is the dialog loop front end: every question is asked in its own
// box, and results are appended to an output log below.
type Dialog struct {
	*Session
}

// NewDialog creates a dialog session reading user input from in and writing to out.
func NewDialog(in io.Reader, out io.Writer) *Dialog {
	return &Dialog{Session: NewSession(in, out)}
}

// Run shows the action dialog until the user picks Exit, the input ends or ctx is done.
func (d *Dialog) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		action, err := d.chooseAction(ctx)
		if err != nil {
			return endOfInput(err)
		}

		switch action {
		case "Add Income":
			err = d.addDialog(ctx, cashbook.Income)
		case "Add Expense":
			err = d.addDialog(ctx, cashbook.Expense)
		case "Show All":
			renderer.DialogTransactions(d.out, d.Ledger.Items())
		case "Show Summary":
			renderer.DialogSummary(d.out, d.Ledger.Summary())
		case "Exit":
			return nil
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// box prints a dialog box with a title and a body.
func (d *Dialog) box(title, body string) {
	d.printf("%s\n", dialogBox.Render(dialogTitle.Render(title)+"\n"+body))
}

// message shows a message box.
func (d *Dialog) message(text string) {
	d.printf("%s\n", messageBox.Render(text))
}

// input shows a dialog box asking for a single line.
//
// An empty answer cancels the dialog.
func (d *Dialog) input(ctx context.Context, title, label string) (string, error) {
	d.box(title, label)
	line, err := d.readLine(ctx, "> ")
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(line) == "" {
		return "", errCancel
	}
	return line, nil
}

// chooseAction shows the action menu until a known action is picked, by number or by name.
func (d *Dialog) chooseAction(ctx context.Context) (string, error) {
	var b strings.Builder
	b.WriteString("Choose an action\n")
	for i, a := range dialogActions {
		fmt.Fprintf(&b, "\n[%d] %s", i+1, a)
	}
	body := b.String()

	for {
		d.box("Menu", body)
		line, err := d.readLine(ctx, "> ")
		if err != nil {
			return "", err
		}
		if action, ok := parseAction(line); ok {
			return action, nil
		}
		d.message(fmt.Sprintf("Unknown action %q", strings.TrimSpace(line)))
	}
}

// parseAction matches an action number or name.
func parseAction(s string) (string, bool) {
	s = normalize(s)
	if i, err := strconv.Atoi(s); err == nil && i >= 1 && i <= len(dialogActions) {
		return dialogActions[i-1], true
	}
	for _, a := range dialogActions {
		if normalize(a) == s {
			return a, true
		}
	}
	return "", false
}

// addDialog asks for an amount and a note, then records the transaction.
//
// An invalid amount shows a message and gets back to the menu, nothing is recorded.
func (d *Dialog) addDialog(ctx context.Context, kind cashbook.Kind) error {
	title := "Add " + kind.Title()
	amount, err := d.input(ctx, title, "Amount (+):")
	if errors.Is(err, errCancel) {
		return nil
	}
	if err != nil {
		return err
	}

	// the note is optional, an empty answer is an empty note.
	d.box(title, "Note:")
	note, err := d.readLine(ctx, "> ")
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	tx, addErr := d.add(kind, amount, note)
	if addErr != nil {
		d.Logger.Printf("rejected amount %q: %v", amount, addErr)
		d.message(InvalidAmountMessage)
		return err
	}
	d.printf("%s\n", renderer.Added(tx))
	return err
}
