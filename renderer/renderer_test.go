package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/expenses"
	"github.com/etnz/expenses/date"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// parsedDoc is what a markdown document looks like once parsed.
type parsedDoc struct {
	headings []string   // text of all headings
	rows     [][]string // text of the cells of each table body row
}

// parse parses a markdown document with GitHub flavored tables.
func parse(t *testing.T, doc string) parsedDoc {
	t.Helper()
	src := []byte(doc)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(src))

	var res parsedDoc
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			res.headings = append(res.headings, string(n.Text(src)))
			return ast.WalkSkipChildren, nil
		case east.KindTableRow:
			var cells []string
			for c := n.FirstChild(); c != nil; c = c.NextSibling() {
				cells = append(cells, string(c.Text(src)))
			}
			res.rows = append(res.rows, cells)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walking markdown: %v", err)
	}
	return res
}

func tx(kind expenses.Kind, on, category, amount string) expenses.Transaction {
	return expenses.NewTransaction(kind, category, decimal.RequireFromString(amount), date.MustParse(on))
}

func TestAmount(t *testing.T) {
	testCases := []struct {
		value    string
		currency string
		want     string
	}{
		{value: "3000", currency: "USD", want: "$3,000.00"},
		{value: "45.5", currency: "USD", want: "$45.50"},
		{value: "0.005", currency: "USD", want: "$0.01"},
		{value: "1234.5", currency: "", want: "1234.50"},
		{value: "-200", currency: "", want: "-200.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.value+tc.currency, func(t *testing.T) {
			got := Amount(decimal.RequireFromString(tc.value), tc.currency)
			if got != tc.want {
				t.Errorf("Amount(%s, %q) = %q, want %q", tc.value, tc.currency, got, tc.want)
			}
		})
	}
}

func TestSignedAmount(t *testing.T) {
	if got := SignedAmount(decimal.Zero, "USD"); got != "-" {
		t.Errorf("SignedAmount(0) = %q, want %q", got, "-")
	}
	if got := SignedAmount(decimal.NewFromInt(1800), "USD"); got != "+$1,800.00" {
		t.Errorf("SignedAmount(1800) = %q", got)
	}
	if got := SignedAmount(decimal.NewFromInt(-200), ""); got != "-200.00" {
		t.Errorf("SignedAmount(-200) = %q", got)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	l := expenses.NewLedger()
	l.Add(
		tx(expenses.Income, "2024-01-05", "Salary", "3000.00"),
		tx(expenses.Expense, "2024-01-07", "Rent", "1200.00"),
		tx(expenses.Expense, "2024-02-01", "Food", "200.00"),
	)

	out := SummaryMarkdown("Monthly Summary", l.MonthlySummary(), "")
	doc := parse(t, out)

	if diff := cmp.Diff([]string{"Monthly Summary"}, doc.headings); diff != "" {
		t.Errorf("headings mismatch (-want +got):\n%s", diff)
	}
	want := [][]string{
		{"January", "3000.00", "1200.00", "+1800.00"},
		{"February", "0.00", "200.00", "-200.00"},
		{"Total", "3000.00", "1400.00", "+1600.00"},
	}
	if diff := cmp.Diff(want, doc.rows); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s\n%s", diff, out)
	}
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	out := SummaryMarkdown("Monthly Summary", nil, "EUR")
	doc := parse(t, out)
	if len(doc.rows) != 0 {
		t.Errorf("empty summary should not render a table:\n%s", out)
	}
	if !strings.Contains(out, "No income or expense recorded.") {
		t.Errorf("empty summary should say so:\n%s", out)
	}
}

func TestTransactions(t *testing.T) {
	txs := []expenses.Transaction{
		tx(expenses.Income, "2024-01-05", "Salary", "3000"),
		tx(expenses.Expense, "2024-03-12", "Food", "45.50"),
	}
	doc := parse(t, Transactions(txs, ""))

	want := [][]string{
		{"2024-01-05", "Income", "Salary", "+3000.00"},
		{"2024-03-12", "Expense", "Food", "-45.50"},
	}
	if diff := cmp.Diff(want, doc.rows); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}

	if empty := Transactions(nil, ""); !strings.Contains(empty, "No transactions.") {
		t.Errorf("empty list should say so:\n%s", empty)
	}
}

func TestTransaction(t *testing.T) {
	got := Transaction(tx(expenses.Expense, "2024-03-12", "Food", "45.5"), "USD")
	if want := "Spent $45.50 (Food) on 2024-03-12"; got != want {
		t.Errorf("Transaction() = %q, want %q", got, want)
	}
	got = Transaction(tx(expenses.Income, "2024-01-05", "Salary", "3000"), "")
	if want := "Received 3000.00 (Salary) on 2024-01-05"; got != want {
		t.Errorf("Transaction() = %q, want %q", got, want)
	}
}
