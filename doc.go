// Package expenses records personal income and expense entries and reports
// on them.
//
// The core functionalities include:
//   - Transactions: an immutable record of one income or expense, with a
//     category, a decimal amount and a calendar date.
//   - Ledger: an ordered, append-only collection of transactions for one
//     session, explicitly owned by its caller.
//   - Persistence: a plain, human-readable text encoding of the ledger, one
//     comma-separated record per line.
//   - Reports: aggregated income, expense and net totals per calendar month.
//
// The package never touches the filesystem. Reading and writing the text
// produced here is left to the caller (see the store package), and so is
// any display formatting (see the renderer package).
//
// A Ledger is not safe for concurrent use.
package expenses
