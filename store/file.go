package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/expenses"
)

// File stores a ledger in a text file, one transaction per line.
type File struct {
	Path string
}

// NewFile returns a store for the text file at path. The file is not
// accessed until Load or Save.
func NewFile(path string) *File { return &File{Path: path} }

// Load reads the file into a new ledger.
func (f *File) Load(ctx context.Context) (*expenses.Ledger, error) {
	l := expenses.NewLedger()
	if _, err := ReadFile(ctx, f.Path, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Save overwrites the file with the ledger content.
func (f *File) Save(ctx context.Context, l *expenses.Ledger) error {
	return WriteFile(ctx, f.Path, l)
}

// Close does nothing, the file is never kept open.
func (f *File) Close() error { return nil }

// ReadFile reads a text file and appends its transactions to l. It returns
// the number of transactions appended.
//
// Decoding errors are returned as is, so callers can get the
// *expenses.FormatError with errors.As.
func ReadFile(ctx context.Context, path string, l *expenses.Ledger) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("could not read ledger file: %w", err)
	}
	n, err := l.LoadFromText(string(content))
	if err != nil {
		return n, fmt.Errorf("could not load %q: %w", path, err)
	}
	return n, nil
}

// WriteFile writes every transaction of l to a text file, replacing its content.
//
// The content is written to a temporary file in the same folder, then
// renamed over path.
func WriteFile(ctx context.Context, path string, l *expenses.Ledger) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".ledger-*")
	if err != nil {
		return fmt.Errorf("could not create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(l.SaveToText()); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write ledger file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("could not write ledger file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("could not write ledger file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not write ledger file: %w", err)
	}
	return nil
}
