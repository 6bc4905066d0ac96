package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/expenses"
	md "github.com/nao1215/markdown"
)

// Transaction renders a transaction to a one line sentence.
func Transaction(tx expenses.Transaction, currency string) string {
	switch tx.Kind() {
	case expenses.Income:
		return fmt.Sprintf("Received %s (%s) on %s", Amount(tx.Amount(), currency), tx.Category(), tx.When())
	case expenses.Expense:
		return fmt.Sprintf("Spent %s (%s) on %s", Amount(tx.Amount(), currency), tx.Category(), tx.When())
	default:
		return tx.String()
	}
}

// Transactions renders a list of transactions as a markdown table.
func Transactions(txs []expenses.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "Kind", "Category", "Amount"},
	}
	for _, tx := range txs {
		amount := tx.Amount()
		if tx.Kind() == expenses.Expense {
			amount = amount.Neg()
		}
		table.Rows = append(table.Rows, []string{
			tx.When().String(),
			tx.Kind().String(),
			tx.Category(),
			SignedAmount(amount, currency),
		})
	}
	doc.Table(table)
	return doc.String()
}
