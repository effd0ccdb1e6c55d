package cgt

import "errors"

// Config carries the externally supplied calculation options into the core.
type Config struct {
	Policy        MatchingPolicy
	ApplyDiscount bool         // apply the 12-month 50% discount to long-term gains
	LongTerm      LongTermRule // boundary used to qualify a holding as long-term
}

// Match records the consumption of (part of) a buy lot by a sell.
type Match struct {
	Security string
	BuyDate  Date
	SellDate Date
	Quantity Quantity
	Cost     Money // cost portion including brokerage, rounded down to the cent
	Proceeds Money // proceeds portion, rounded up to the cent
	Gain     Money // Proceeds - Cost
	LongTerm bool
	Taxed    Money // gain after the 12-month discount; equals Gain when no discount applies
	Approx   bool  // cost is apportioned from a partially consumed lot
}

// MatchSecurity matches every sell of a single security against its open buy
// lots, in date order, under the given configuration. It returns the match
// records and the lots still open after the last transaction.
//
// A sell that exceeds the open quantity returns an *OversoldError and no
// matches: the statement data is wrong for this security and partial output
// would be misleading.
func MatchSecurity(ticker string, txs []Transaction, cfg Config) ([]Match, lots, error) {
	var open lots
	var matches []Match

	for _, tx := range txs {
		switch tx.Type {
		case Buy:
			open = append(open, newLot(tx))
		case Sell:
			remaining := tx.Quantity
			for _, lt := range open.consumptionOrder(cfg, tx) {
				if !remaining.IsPositive() {
					break
				}
				take := lt.Remaining.Min(remaining)
				cost := lt.costOf(take)
				proceeds := tx.Amount.Mul(take).Div(tx.Quantity).RoundCeil()
				gain := proceeds.Sub(cost)
				longTerm := cfg.LongTerm.LongTerm(lt.Date, tx.Date)
				taxed := gain
				if cfg.ApplyDiscount && longTerm && gain.IsPositive() {
					taxed = gain.Half().RoundCeil()
				}
				matches = append(matches, Match{
					Security: ticker,
					BuyDate:  lt.Date,
					SellDate: tx.Date,
					Quantity: take,
					Cost:     cost,
					Proceeds: proceeds,
					Gain:     gain,
					LongTerm: longTerm,
					Taxed:    taxed,
					Approx:   !take.Equal(lt.Quantity),
				})
				lt.Remaining = lt.Remaining.Sub(take)
				remaining = remaining.Sub(take)
			}
			if remaining.IsPositive() {
				return nil, nil, &OversoldError{Security: ticker, Date: tx.Date, Short: remaining}
			}
			open = open.compact()
		}
	}
	return matches, open, nil
}

// MatchResult aggregates matching over a whole ledger.
type MatchResult struct {
	Matches  []Match
	Holdings map[string]Quantity // shares still held per security
	Oversold []*OversoldError    // securities whose output is omitted
}

// MatchLedger matches every security in the ledger independently; each
// security owns its own lot pool, so a data error in one leaves the others
// unaffected.
func MatchLedger(l *Ledger, cfg Config) *MatchResult {
	res := &MatchResult{Holdings: make(map[string]Quantity)}
	for _, ticker := range l.Securities() {
		matches, open, err := MatchSecurity(ticker, l.Security(ticker), cfg)
		if err != nil {
			var oversold *OversoldError
			if errors.As(err, &oversold) {
				res.Oversold = append(res.Oversold, oversold)
			}
			continue
		}
		res.Matches = append(res.Matches, matches...)
		res.Holdings[ticker] = open.open()
	}
	return res
}
