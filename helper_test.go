package cgt

// AUD is a helper for test to create australian dollar money from const
func AUD(v float64) Money { return M(v, DefaultCurrency) }

// buy is a helper for test to create a buy row from consts.
func buy(date, security string, quantity int, amount float64) Transaction {
	return NewBuy(MustParse(date), security, Q(quantity), AUD(amount))
}

// sell is a helper for test to create a sell row from consts.
func sell(date, security string, quantity int, amount float64) Transaction {
	return NewSell(MustParse(date), security, Q(quantity), AUD(amount))
}

// ledgerOf is a helper for test to build a ledger from rows.
func ledgerOf(txs ...Transaction) *Ledger {
	l := NewLedger()
	l.Append(txs...)
	return l
}
