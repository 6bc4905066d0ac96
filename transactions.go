package expenses

import (
	"errors"
	"fmt"

	"github.com/etnz/expenses/date"
	"github.com/shopspring/decimal"
)

// Kind tells whether a transaction brings money in or takes it out.
type Kind int

const (
	// Income is money received (salary, business, ...).
	Income Kind = iota + 1
	// Expense is money spent (food, rent, travel, ...).
	Expense
)

// ErrUnknownKind is returned when parsing a text that is neither "Income" nor "Expense".
var ErrUnknownKind = errors.New("unknown transaction kind")

func (k Kind) String() string {
	switch k {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	default:
		return "unknown"
	}
}

// ParseKind parses the exact literals "Income" and "Expense".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "Income":
		return Income, nil
	case "Expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k != Income && k != Expense {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Transaction is one recorded income or expense.
//
// A Transaction is a value: once created none of its fields can change.
type Transaction struct {
	kind     Kind
	category string
	amount   decimal.Decimal
	date     date.Date
}

// NewTransaction returns a fully populated transaction.
//
// No cross-field validation happens here: any category text is accepted and
// amounts may be zero or negative.
func NewTransaction(kind Kind, category string, amount decimal.Decimal, on date.Date) Transaction {
	return Transaction{
		kind:     kind,
		category: category,
		amount:   amount,
		date:     on,
	}
}

// NewIncome is a shortcut for NewTransaction(Income, ...).
func NewIncome(on date.Date, category string, amount decimal.Decimal) Transaction {
	return NewTransaction(Income, category, amount, on)
}

// NewExpense is a shortcut for NewTransaction(Expense, ...).
func NewExpense(on date.Date, category string, amount decimal.Decimal) Transaction {
	return NewTransaction(Expense, category, amount, on)
}

func (t Transaction) Kind() Kind              { return t.kind }
func (t Transaction) Category() string        { return t.category }
func (t Transaction) Amount() decimal.Decimal { return t.amount }
func (t Transaction) When() date.Date         { return t.date }

// Equal reports whether both transactions hold the same four fields.
// Amounts are compared numerically, so 45.5 equals 45.50.
func (t Transaction) Equal(u Transaction) bool {
	return t.kind == u.kind &&
		t.category == u.category &&
		t.amount.Equal(u.amount) &&
		t.date == u.date
}

// String returns the text encoding of the transaction, see Encode.
func (t Transaction) String() string { return Encode(t) }

// AcceptAll is a filter that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// InYear returns a filter that accepts transactions dated in year y.
func InYear(y int) func(Transaction) bool {
	return func(t Transaction) bool { return t.date.Year() == y }
}

// Between returns a filter that accepts transactions dated within r.
func Between(r date.Range) func(Transaction) bool {
	return func(t Transaction) bool { return r.Contains(t.date) }
}

// OfKind returns a filter that accepts transactions of kind k.
func OfKind(k Kind) func(Transaction) bool {
	return func(t Transaction) bool { return t.kind == k }
}
