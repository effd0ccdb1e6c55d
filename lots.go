package cgt

import "slices"

// lot is the remaining unmatched portion of a buy transaction.
// Cost and Quantity keep the original figures so that partial consumptions
// are always apportioned against the statement's own numbers.
type lot struct {
	Date      Date
	Quantity  Quantity // quantity originally bought
	Cost      Money    // total cost of the lot, including brokerage
	Remaining Quantity
}

func newLot(tx Transaction) *lot {
	return &lot{Date: tx.Date, Quantity: tx.Quantity, Cost: tx.Amount, Remaining: tx.Quantity}
}

// unitCost returns the cost per share of the lot.
func (l *lot) unitCost() Money { return l.Cost.Div(l.Quantity) }

// costOf returns the cost apportioned to q shares, rounded down to the cent.
// Rounding the cost down (and proceeds up) yields the largest taxable gain,
// so the figures never understate the tax owed.
func (l *lot) costOf(q Quantity) Money { return l.Cost.Mul(q).Div(l.Quantity).RoundFloor() }

type lots []*lot

// open returns the total remaining quantity over all lots.
func (l lots) open() Quantity {
	var q Quantity
	for _, lt := range l {
		q = q.Add(lt.Remaining)
	}
	return q
}

// compact drops exhausted lots, preserving order.
func (l lots) compact() lots {
	return slices.DeleteFunc(l, func(lt *lot) bool { return lt.Remaining.IsZero() })
}

// consumptionOrder returns the open lots in the order the given sell must
// consume them.
//
// FIFO keeps the pool order, which is chronological. MinimizeCGT ranks lots
// dated strictly before the sell by the gain per share they would realize,
// smallest first; after the discount rule this is the taxable gain, so a
// discounted long-term lot can rank better than a cheaper short-term one.
// Ties go to the oldest lot to prefer long-term treatment. Lots opened on the
// sell date itself stay last, in FIFO order.
func (l lots) consumptionOrder(cfg Config, sell Transaction) lots {
	if cfg.Policy == FIFO {
		return l
	}

	var before, sameDay lots
	for _, lt := range l {
		if lt.Date.Before(sell.Date) {
			before = append(before, lt)
		} else {
			sameDay = append(sameDay, lt)
		}
	}

	unitProceeds := sell.Amount.Div(sell.Quantity)
	taxableUnitGain := func(lt *lot) Money {
		g := unitProceeds.Sub(lt.unitCost())
		if cfg.ApplyDiscount && g.IsPositive() && cfg.LongTerm.LongTerm(lt.Date, sell.Date) {
			g = g.Half()
		}
		return g
	}

	slices.SortStableFunc(before, func(a, b *lot) int {
		if c := taxableUnitGain(a).Cmp(taxableUnitGain(b)); c != 0 {
			return c
		}
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
	return append(before, sameDay...)
}
