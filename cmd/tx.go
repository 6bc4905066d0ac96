package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/date"
	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	year int
	from string
	to   string
	head int
	tail int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list all transactions in the ledger" }
func (*txCmd) Usage() string {
	return `xt tx [-y <year> | -from <date> -to <date>] [-head <n>] [-tail <n>]

  Lists transactions from the ledger in the order they were recorded, with
  options for filtering and limiting the output.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&p.year, "y", 0, "Show only transactions of this year.")
	f.StringVar(&p.from, "from", "", "Show only transactions on or after this date.")
	f.StringVar(&p.to, "to", "", "Show only transactions on or before this date.")
	f.IntVar(&p.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&p.tail, "tail", 0, "Show only the last N transactions.")
}

func (p *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if p.head > 0 && p.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	period, err := p.period()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	s, ledger, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	var transactions []expenses.Transaction
	for _, tx := range ledger.Transactions(expenses.Between(period)) {
		transactions = append(transactions, tx)
	}

	if p.head > 0 && len(transactions) > p.head {
		transactions = transactions[:p.head]
	}
	if p.tail > 0 && len(transactions) > p.tail {
		transactions = transactions[len(transactions)-p.tail:]
	}

	printMarkdown(renderer.Transactions(transactions, *currency))
	return subcommands.ExitSuccess
}

// period returns the range of dates selected by the flags.
func (p *txCmd) period() (date.Range, error) {
	if p.year != 0 {
		if p.from != "" || p.to != "" {
			return date.Range{}, errors.New("-y cannot be used with -from or -to")
		}
		return date.Year(p.year), nil
	}
	var r date.Range
	var err error
	if p.from != "" {
		if r.From, err = date.Parse(p.from); err != nil {
			return r, err
		}
	}
	if p.to != "" {
		if r.To, err = date.Parse(p.to); err != nil {
			return r, err
		}
	}
	if !r.IsValid() {
		return r, fmt.Errorf("empty period: %s", r)
	}
	return r, nil
}
