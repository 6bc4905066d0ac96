package renderer

import (
	"bytes"

	"github.com/etnz/expenses"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders monthly summary rows as a markdown table, followed
// by a total row.
func SummaryMarkdown(title string, rows []expenses.MonthSummary, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(rows) == 0 {
		doc.PlainText("No income or expense recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Month", "Income", "Expense", "Net"},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.Month.String(),
			Amount(r.Income, currency),
			Amount(r.Expense, currency),
			SignedAmount(r.Net, currency),
		})
	}
	total := expenses.Totals(rows)
	table.Rows = append(table.Rows, []string{
		md.Bold("Total"),
		md.Bold(Amount(total.Income, currency)),
		md.Bold(Amount(total.Expense, currency)),
		md.Bold(SignedAmount(total.Net, currency)),
	})
	doc.Table(table)

	return doc.String()
}
