package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/date"
	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addCmd records a new transaction of a given kind.
type addCmd struct {
	kind     expenses.Kind
	date     string
	category string
	amount   string
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date (YYYY-MM-DD)")
	f.StringVar(&c.category, "c", "", "Category (e.g. "+c.examples()+")")
	f.StringVar(&c.amount, "a", "", "Amount, a decimal number")
}

func (c *addCmd) examples() string {
	if c.kind == expenses.Income {
		return "Salary, Business"
	}
	return "Food, Rent, Travel"
}

// transaction parses the flags into a transaction.
func (c *addCmd) transaction() (expenses.Transaction, error) {
	if c.amount == "" {
		return expenses.Transaction{}, errors.New("missing amount")
	}
	// The text format has no escaping.
	if strings.Contains(c.category, ",") {
		return expenses.Transaction{}, fmt.Errorf("category %q cannot contain a comma", c.category)
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		return expenses.Transaction{}, fmt.Errorf("invalid amount %q: %w", c.amount, err)
	}
	day, err := date.Parse(c.date)
	if err != nil {
		return expenses.Transaction{}, err
	}
	return expenses.NewTransaction(c.kind, c.category, amount, day), nil
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tx, err := c.transaction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		f.Usage()
		return subcommands.ExitUsageError
	}

	s, ledger, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	ledger.Add(tx)
	if err := saveLedger(ctx, s, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintln(stdout, renderer.Transaction(tx, *currency))
	fmt.Fprintf(stdout, "Transaction added to %s\n", *ledgerFile)
	return subcommands.ExitSuccess
}

// --- Income Command ---

type incomeCmd struct{ addCmd }

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record money received" }
func (*incomeCmd) Usage() string {
	return `xt income -c <category> -a <amount> [-d <date>]

  Records an income in the ledger.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	c.kind = expenses.Income
	c.addCmd.SetFlags(f)
}

// --- Expense Command ---

type expenseCmd struct{ addCmd }

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record money spent" }
func (*expenseCmd) Usage() string {
	return `xt expense -c <category> -a <amount> [-d <date>]

  Records an expense in the ledger.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	c.kind = expenses.Expense
	c.addCmd.SetFlags(f)
}
