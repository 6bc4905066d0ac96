package expenses

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/expenses/date"
	"github.com/shopspring/decimal"
)

// separator between fields of an encoded transaction. It is never escaped.
const separator = ","

// ErrFieldCount is returned when a line does not hold exactly four fields.
var ErrFieldCount = errors.New("wrong number of fields")

// FormatError reports a persisted line that cannot be decoded into a Transaction.
type FormatError struct {
	Line int    // 1-based line number in the loaded content, 0 when unknown.
	Text string // the offending line.
	Err  error  // the underlying cause.
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid transaction %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("invalid transaction %q: %v", e.Text, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Encode returns the single line text representation of t, without line
// terminator:
//
//	Expense,Food,45.5,2024-03-12
//
// The amount is written with all its digits, trailing zeros trimmed. The
// category is written verbatim: a category containing a comma produces a
// line that Decode rejects.
func Encode(t Transaction) string {
	return strings.Join([]string{
		t.kind.String(),
		t.category,
		t.amount.String(),
		t.date.String(),
	}, separator)
}

// Decode parses a line produced by Encode.
//
// Every failure is reported as a *FormatError.
func Decode(line string) (Transaction, error) {
	parts := strings.Split(line, separator)
	if len(parts) != 4 {
		return Transaction{}, &FormatError{Text: line, Err: fmt.Errorf("%w: got %d want 4", ErrFieldCount, len(parts))}
	}

	kind, err := ParseKind(parts[0])
	if err != nil {
		return Transaction{}, &FormatError{Text: line, Err: err}
	}

	amount, err := decimal.NewFromString(parts[2])
	if err != nil {
		return Transaction{}, &FormatError{Text: line, Err: fmt.Errorf("invalid amount %q: %w", parts[2], err)}
	}

	on, err := date.Parse(parts[3])
	if err != nil {
		return Transaction{}, &FormatError{Text: line, Err: err}
	}

	return NewTransaction(kind, parts[1], amount, on), nil
}

// LoadFromText decodes every non empty line of content and appends the
// transactions to the ledger, in order. Existing transactions are kept.
//
// It stops at the first line that cannot be decoded and returns a
// *FormatError with its line number. Transactions decoded before that line
// stay in the ledger.
func (l *Ledger) LoadFromText(content string) (int, error) {
	count := 0
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue // Skip empty lines
		}
		tx, err := Decode(line)
		if err != nil {
			var fe *FormatError
			if errors.As(err, &fe) {
				fe.Line = i + 1
			}
			return count, err
		}
		l.Add(tx)
		count++
	}
	return count, nil
}

// SaveToText encodes every transaction of the ledger, in order, each followed by "\n".
func (l *Ledger) SaveToText() string {
	var b strings.Builder
	for _, tx := range l.transactions {
		b.WriteString(Encode(tx))
		b.WriteByte('\n')
	}
	return b.String()
}
