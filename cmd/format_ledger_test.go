package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestFormatLedger(t *testing.T) {
	original := "Expense,Food,45.50,2024-03-12\r\n\nIncome,Salary,3000.00,2024-01-05\n"
	expected := "Expense,Food,45.5,2024-03-12\nIncome,Salary,3000,2024-01-05\n"

	ledger := createTempFile(t, "expenses.csv", original)
	withGlobals(t, ledger, "file", "EUR", false)
	var out bytes.Buffer
	withStdout(t, &out)

	if status := run(t, &formatLedgerCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if got := readFile(t, ledger); got != expected {
		t.Errorf("Formatted ledger mismatch.\nGot:\n%s\nWant:\n%s", got, expected)
	}
	if !strings.Contains(out.String(), "(2 transactions)") {
		t.Errorf("unexpected output: %q", out.String())
	}

	// Formatting is idempotent.
	if status := run(t, &formatLedgerCmd{}); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	if got := readFile(t, ledger); got != expected {
		t.Errorf("Second format changed the ledger:\n%s", got)
	}
}

func TestFormatLedger_InvalidLedger(t *testing.T) {
	original := "Expense,Food,45.50,2024-03-12\nTransfer,Savings,10,2024-03-13\n"
	ledger := createTempFile(t, "expenses.csv", original)
	withGlobals(t, ledger, "file", "EUR", false)
	withStdout(t, &bytes.Buffer{})

	if status := run(t, &formatLedgerCmd{}); status != subcommands.ExitFailure {
		t.Fatalf("Expected ExitFailure, got %v", status)
	}
	if got := readFile(t, ledger); got != original {
		t.Errorf("Invalid ledger was modified:\n%s", got)
	}
}
