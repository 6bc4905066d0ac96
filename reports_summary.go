package expenses

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MonthSummary holds the totals of one calendar month.
type MonthSummary struct {
	Month   time.Month      // zero for a grand total, see Totals.
	Income  decimal.Decimal // sum of Income amounts.
	Expense decimal.Decimal // sum of Expense amounts.
	Net     decimal.Decimal // Income - Expense.
}

// MonthlySummary aggregates the ledger per calendar month.
//
// Months are taken regardless of the year: March 2023 and March 2024 are
// summed together. Rows come in calendar order, January first, and a month
// is reported only if its income or its expense total is strictly positive.
func (l *Ledger) MonthlySummary() []MonthSummary {
	var income, expense [13]decimal.Decimal // indexed by time.Month, 0 is unused.
	for _, tx := range l.transactions {
		m := tx.When().Month()
		if tx.Kind() == Income {
			income[m] = income[m].Add(tx.Amount())
		} else {
			expense[m] = expense[m].Add(tx.Amount())
		}
	}

	var rows []MonthSummary
	for m := time.January; m <= time.December; m++ {
		if !income[m].IsPositive() && !expense[m].IsPositive() {
			continue
		}
		rows = append(rows, MonthSummary{
			Month:   m,
			Income:  income[m],
			Expense: expense[m],
			Net:     income[m].Sub(expense[m]),
		})
	}
	return rows
}

// Totals sums up all rows. The returned Month is zero.
func Totals(rows []MonthSummary) MonthSummary {
	var total MonthSummary
	for _, r := range rows {
		total.Income = total.Income.Add(r.Income)
		total.Expense = total.Expense.Add(r.Expense)
	}
	total.Net = total.Income.Sub(total.Expense)
	return total
}

// MarshalJSON writes the row with a fixed key order and unquoted amounts:
//
//	{"month":"January","income":3000,"expense":1200,"net":1800}
//
// The month key is omitted for a grand total.
func (s MonthSummary) MarshalJSON() ([]byte, error) {
	var name string
	if s.Month != 0 {
		name = s.Month.String()
	}
	var w jsonObjectWriter
	w.Optional("month", name)
	w.Append("income", s.Income)
	w.Append("expense", s.Expense)
	w.Append("net", s.Net)
	return w.MarshalJSON()
}
