package expenses

import (
	"github.com/etnz/expenses/date"
	"github.com/shopspring/decimal"
)

// D is a helper for tests to create an exact decimal from its text form.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// In is a helper for tests to create an Income transaction from constants.
func In(on, category, amount string) Transaction {
	return NewIncome(date.MustParse(on), category, D(amount))
}

// Out is a helper for tests to create an Expense transaction from constants.
func Out(on, category, amount string) Transaction {
	return NewExpense(date.MustParse(on), category, D(amount))
}
