// Package cmd implements the CLI application to manage an expense ledger.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/log"
	"github.com/etnz/expenses"
	"github.com/etnz/expenses/store"
	"github.com/google/subcommands"
)

// Commands lists every subcommand with its group.
var Commands = []struct {
	Group   string
	Command subcommands.Command
}{
	{"transactions", &incomeCmd{}},
	{"transactions", &expenseCmd{}},
	{"persistence", &importCmd{}},
	{"persistence", &exportCmd{}},
	{"persistence", &formatLedgerCmd{}},
	{"reports", &summaryCmd{}},
	{"reports", &txCmd{}},
	{"reports", &publishCmd{}},
	{"documentation", &topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd.Command, cmd.Group)
	}
}

// IsRegistered reports whether name is a subcommand known to c.
func IsRegistered(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}

var (
	ledgerFile = flag.String("ledger-file", "expenses.csv", "Path to the ledger (a text file, or a database with -backend sqlite)")
	backend    = flag.String("backend", string(store.FileBackend), "Ledger storage backend (file, sqlite)")
	currency   = flag.String("currency", "EUR", "ISO 4217 currency used to display amounts, empty for plain numbers")
	verbose    = flag.Bool("v", false, "Verbose logging")
)

// logger reports diagnostics on stderr. Command results go to stdout.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "xt"})

// stdout is where commands print their results.
var stdout io.Writer = os.Stdout

// openLedger opens the configured store and loads its ledger.
// A ledger file that does not exist yet is an empty ledger.
func openLedger(ctx context.Context) (store.Store, *expenses.Ledger, error) {
	s, err := store.Open(ctx, store.Backend(*backend), *ledgerFile)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open ledger %q: %w", *ledgerFile, err)
	}
	l, err := s.Load(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn("ledger does not exist, starting with an empty one", "file", *ledgerFile)
		l, err = expenses.NewLedger(), nil
	}
	if err != nil {
		s.Close()
		return nil, nil, fmt.Errorf("could not load ledger %q: %w", *ledgerFile, err)
	}
	logger.Debug("ledger loaded", "file", *ledgerFile, "backend", *backend, "transactions", l.Len())
	return s, l, nil
}

// saveLedger saves the ledger back into its store.
func saveLedger(ctx context.Context, s store.Store, l *expenses.Ledger) error {
	if err := s.Save(ctx, l); err != nil {
		return fmt.Errorf("could not save ledger %q: %w", *ledgerFile, err)
	}
	logger.Debug("ledger saved", "file", *ledgerFile, "transactions", l.Len())
	return nil
}

// printMarkdown renders markdown for the terminal, falling back on the raw
// markdown if rendering fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			fmt.Fprint(stdout, out)
			return
		}
	}
	logger.Debug("could not render markdown", "err", err)
	fmt.Fprint(stdout, md)
}
