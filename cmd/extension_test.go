package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// writeExtension creates an executable shell script named xt-<name> in dir.
func writeExtension(t *testing.T, dir, name, script string) {
	t.Helper()
	path := filepath.Join(dir, ExtensionPrefix+name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestExtensionMechanism(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	tempDir := t.TempDir()
	writeExtension(t, tempDir, "hello", fmt.Sprintf(`
echo "args=$*"
echo "%[1]s=$%[1]s"
echo "%[2]s=$%[2]s"
echo "%[3]s=$%[3]s"
echo "%[4]s=$%[4]s"
`, EnvLedgerFile, EnvBackend, EnvCurrency, EnvVerbose))
	writeExtension(t, tempDir, "fail", "exit 3\n")
	t.Setenv("PATH", tempDir+string(os.PathListSeparator)+os.Getenv("PATH"))

	expectedLedgerFile := filepath.Join(tempDir, "random_ledger.csv")
	withGlobals(t, expectedLedgerFile, "file", "XYZ", true)

	var out bytes.Buffer
	withStdout(t, &out)

	found, code := RunExtension("hello", []string{"a", "b"})
	if !found || code != 0 {
		t.Fatalf("RunExtension(hello) = %v, %d, want true, 0", found, code)
	}

	for _, expectedLine := range []string{
		"args=a b",
		EnvLedgerFile + "=" + expectedLedgerFile,
		EnvBackend + "=file",
		EnvCurrency + "=XYZ",
		EnvVerbose + "=true",
	} {
		if !strings.Contains(out.String(), expectedLine) {
			t.Errorf("Expected output to contain %q, but got:\n%s", expectedLine, out.String())
		}
	}

	if found, code := RunExtension("fail", nil); !found || code != 3 {
		t.Errorf("RunExtension(fail) = %v, %d, want true, 3", found, code)
	}
	if found, _ := RunExtension("does-not-exist", nil); found {
		t.Errorf("RunExtension(does-not-exist) should not be found")
	}
}
