// Package store persists ledgers.
//
// Two backends are available: a plain text file using the ledger's own line
// encoding, and a SQLite database.
package store

import (
	"context"
	"fmt"
	"io"

	"github.com/etnz/expenses"
)

// Backend identifies a storage implementation.
type Backend string

const (
	FileBackend   Backend = "file"
	SQLiteBackend Backend = "sqlite"
)

// Backends lists every supported backend.
var Backends = []Backend{FileBackend, SQLiteBackend}

// IsValid reports whether b is a supported backend.
func (b Backend) IsValid() bool {
	switch b {
	case FileBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Store loads and saves a whole ledger.
type Store interface {
	// Load returns the persisted ledger. A text file that does not exist yet
	// is reported with an error matching fs.ErrNotExist.
	Load(ctx context.Context) (*expenses.Ledger, error)
	// Save replaces the persisted ledger with l.
	Save(ctx context.Context, l *expenses.Ledger) error
	io.Closer
}

// Open opens the store of the given backend located at path.
func Open(ctx context.Context, backend Backend, path string) (Store, error) {
	switch backend {
	case FileBackend:
		return NewFile(path), nil
	case SQLiteBackend:
		return OpenSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported backend type: %q", backend)
	}
}
