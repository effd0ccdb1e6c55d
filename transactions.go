package cgt

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
)

// TransactionType identifies the side of a statement row.
type TransactionType string

const (
	Buy  TransactionType = "buy"
	Sell TransactionType = "sell"
)

// ParseTransactionType parses a statement Type cell, case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q, want Buy or Sell", s)
	}
}

// Transaction is one statement row. It is immutable once parsed.
//
// Amount is the statement's Total Value: for a buy, the cost of the purchase
// including the brokerage fee (the base cost); for a sell, the proceeds
// excluding the brokerage fee.
type Transaction struct {
	Security string
	Date     Date
	Type     TransactionType
	Quantity Quantity
	Amount   Money
}

// NewBuy creates a new buy transaction.
func NewBuy(day Date, security string, quantity Quantity, amount Money) Transaction {
	return Transaction{Security: security, Date: day, Type: Buy, Quantity: quantity, Amount: amount}
}

// NewSell creates a new sell transaction.
func NewSell(day Date, security string, quantity Quantity, amount Money) Transaction {
	return Transaction{Security: security, Date: day, Type: Sell, Quantity: quantity, Amount: amount}
}

// Ledger holds the statement transactions in chronological order. Statement
// order is preserved among transactions on the same day.
type Ledger struct {
	transactions []Transaction
	sorted       bool
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Append adds transactions to the ledger.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.sorted = false
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

func (l *Ledger) sort() {
	if l.sorted {
		return
	}
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
	l.sorted = true
}

// Transactions returns an iterator over all transactions in date order.
func (l *Ledger) Transactions() iter.Seq[Transaction] {
	l.sort()
	return slices.Values(l.transactions)
}

// Securities returns the distinct security tickers in the ledger, sorted.
func (l *Ledger) Securities() []string {
	set := make(map[string]struct{})
	for _, tx := range l.transactions {
		set[tx.Security] = struct{}{}
	}
	return slices.Sorted(maps.Keys(set))
}

// Security returns the transactions of one security, in date order.
func (l *Ledger) Security(ticker string) []Transaction {
	l.sort()
	var txs []Transaction
	for _, tx := range l.transactions {
		if tx.Security == ticker {
			txs = append(txs, tx)
		}
	}
	return txs
}

// LatestSell returns the date of the most recent sell in the ledger,
// or false if the ledger contains no sell at all.
func (l *Ledger) LatestSell() (Date, bool) {
	var latest Date
	var found bool
	for _, tx := range l.transactions {
		if tx.Type == Sell && (!found || tx.Date.After(latest)) {
			latest, found = tx.Date, true
		}
	}
	return latest, found
}

// SoldWithin reports whether the security has at least one sell inside the range.
func (l *Ledger) SoldWithin(ticker string, period Range) bool {
	for _, tx := range l.transactions {
		if tx.Security == ticker && tx.Type == Sell && period.Contains(tx.Date) {
			return true
		}
	}
	return false
}
