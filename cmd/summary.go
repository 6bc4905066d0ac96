package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	year int
	json bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display income, expense and net per month" }
func (*summaryCmd) Usage() string {
	return `xt summary [-y <year>] [-json]

  Displays the total income, expense and net of each calendar month.
  Without -y, months of different years are summed together: March shows
  every March in the ledger. Months without activity are not shown.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "y", 0, "Only account for transactions of this year")
	f.BoolVar(&c.json, "json", false, "Print the summary as JSON")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, ledger, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	title := "Monthly Summary"
	if c.year != 0 {
		ledger = ledger.Filter(expenses.InYear(c.year))
		title = fmt.Sprintf("Monthly Summary %d", c.year)
	}
	rows := ledger.MonthlySummary()

	if c.json {
		if rows == nil {
			rows = []expenses.MonthSummary{}
		}
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Fprintln(stdout, string(data))
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.SummaryMarkdown(title, rows, *currency))
	return subcommands.ExitSuccess
}
