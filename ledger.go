package expenses

import (
	"iter"
)

// Ledger represents an ordered list of transactions.
//
// In a Ledger transactions are kept in insertion order. Transactions are
// only ever appended.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
	}
}

// Add appends transactions to this ledger.
func (l *Ledger) Add(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Transactions returns an iterator that yields each transaction accepted by
// any of the filters, in its original order, along with its index.
//
// With no filter, nothing is yielded: use AcceptAll to iterate over everything.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := false
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// Filter returns a new ledger holding the transactions accepted by any of
// the filters, in order. The receiver is left untouched.
func (l *Ledger) Filter(filters ...func(Transaction) bool) *Ledger {
	res := NewLedger()
	for _, tx := range l.Transactions(filters...) {
		res.Add(tx)
	}
	return res
}
