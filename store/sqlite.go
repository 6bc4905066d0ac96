package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/date"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/shopspring/decimal"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLite stores a ledger in a SQLite database. Amounts are kept as decimal
// text so that no digit is lost.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens, or creates, the database at path and brings its schema
// up to date.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(path); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLite{db: db}, nil
}

// RunMigrations applies the embedded schema migrations to the database at path.
func RunMigrations(path string) error {
	// A separate connection, the migrate driver closes it when done.
	migrateDB, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Load reads all transactions, in their saved order.
func (s *SQLite) Load(ctx context.Context) (*expenses.Ledger, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT seq, kind, category, amount, date FROM transactions ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	l := expenses.NewLedger()
	for rows.Next() {
		var (
			seq                          int64
			kind, category, amount, when string
		)
		if err := rows.Scan(&seq, &kind, &category, &amount, &when); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		tx, err := decodeRow(kind, category, amount, when)
		if err != nil {
			return nil, fmt.Errorf("transaction #%d: %w", seq, err)
		}
		l.Add(tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return l, nil
}

func decodeRow(kind, category, amount, when string) (expenses.Transaction, error) {
	k, err := expenses.ParseKind(kind)
	if err != nil {
		return expenses.Transaction{}, err
	}
	a, err := decimal.NewFromString(amount)
	if err != nil {
		return expenses.Transaction{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	on, err := date.Parse(when)
	if err != nil {
		return expenses.Transaction{}, err
	}
	return expenses.NewTransaction(k, category, a, on), nil
}

// Save replaces every stored transaction with the ones of l, in a single
// database transaction.
func (s *SQLite) Save(ctx context.Context, l *expenses.Ledger) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer dbTx.Rollback()

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM transactions`); err != nil {
		return fmt.Errorf("clear transactions: %w", err)
	}

	stmt, err := dbTx.PrepareContext(ctx, `INSERT INTO transactions (seq, kind, category, amount, date) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, tx := range l.Transactions(expenses.AcceptAll) {
		if _, err := stmt.ExecContext(ctx, i+1, tx.Kind().String(), tx.Category(), tx.Amount().String(), tx.When().String()); err != nil {
			return fmt.Errorf("insert transaction #%d: %w", i+1, err)
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
