package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/subcommands"
)

// withGlobals overrides the global flags for the duration of the test.
func withGlobals(t *testing.T, ledger, back, cur string, verb bool) {
	t.Helper()
	oldLedger, oldBackend, oldCurrency, oldVerbose := *ledgerFile, *backend, *currency, *verbose
	*ledgerFile, *backend, *currency, *verbose = ledger, back, cur, verb
	t.Cleanup(func() {
		*ledgerFile, *backend, *currency, *verbose = oldLedger, oldBackend, oldCurrency, oldVerbose
	})
}

// withStdout redirects command results to w for the duration of the test.
func withStdout(t *testing.T, w io.Writer) {
	t.Helper()
	old := stdout
	stdout = w
	t.Cleanup(func() { stdout = old })
}

// run parses args with the command's flags and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: could not parse %v: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), f)
}

// createTempFile creates a file with content in a temporary directory and returns its path.
func createTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

// readFile returns the content of path, failing the test on error.
func readFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(content)
}
