package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type formatLedgerCmd struct{}

func (*formatLedgerCmd) Name() string     { return "fmt" }
func (*formatLedgerCmd) Synopsis() string { return "rewrite the ledger into its canonical form" }
func (*formatLedgerCmd) Usage() string {
	return `xt fmt

  Validates the ledger and writes it back in canonical form: one
  transaction per line, no blank lines, amounts without trailing zeros.
  Transactions keep the order they were recorded in.
`
}

func (*formatLedgerCmd) SetFlags(*flag.FlagSet) {}

func (*formatLedgerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, ledger, err := openLedger(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if err := saveLedger(ctx, s, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Ledger %s has been formatted (%d transactions).\n", *ledgerFile, ledger.Len())
	return subcommands.ExitSuccess
}
