package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/store"
	"github.com/google/subcommands"
)

// --- Import Command ---

type importCmd struct {
	file string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "append transactions from a text file to the ledger" }
func (*importCmd) Usage() string {
	return `xt import -f <file>

  Reads a text file, one transaction per line:

    Expense,Food,45.50,2024-03-12

  and appends its transactions to the ledger. Importing the same file twice
  records its transactions twice. If any line is invalid, the ledger is left
  unchanged.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", "Text file to import")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	s, ledger, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	count, err := store.ReadFile(ctx, c.file, ledger)
	if err != nil {
		var fe *expenses.FormatError
		if errors.As(err, &fe) {
			logger.Error("invalid transaction", "file", c.file, "line", fe.Line, "text", fe.Text, "err", fe.Err)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := saveLedger(ctx, s, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "%d transactions loaded from %s\n", count, c.file)
	return subcommands.ExitSuccess
}

// --- Export Command ---

type exportCmd struct {
	file string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "save the ledger to a text file" }
func (*exportCmd) Usage() string {
	return `xt export -o <file>

  Writes every transaction of the ledger to a text file, one per line, in
  the order they were recorded. An existing file is overwritten.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "o", "", "Destination text file")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	s, ledger, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if err := store.WriteFile(ctx, c.file, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving file: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Data saved to %s\n", c.file)
	return subcommands.ExitSuccess
}
