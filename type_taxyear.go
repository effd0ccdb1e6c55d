package cgt

import (
	"fmt"
	"strconv"
	"time"
)

// Range represents an inclusive range of dates.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Contains returns true if the date is included in the range (boundaries included).
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

func (r Range) String() string { return fmt.Sprintf("%s to %s", r.From, r.To) }

// Identifier computes a compact identifier for the range, used in report file names.
func (r Range) Identifier() string {
	return fmt.Sprintf("%s-%s", r.From.Format("02012006"), r.To.Format("02012006"))
}

// FinancialYear returns the Australian financial year (1 July to 30 June)
// containing the given date.
func FinancialYear(d Date) Range {
	if d.Month() >= time.July {
		return Range{From: NewDate(d.Year(), time.July, 1), To: NewDate(d.Year()+1, time.June, 30)}
	}
	return Range{From: NewDate(d.Year()-1, time.July, 1), To: NewDate(d.Year(), time.June, 30)}
}

// FinancialYearEnding returns the financial year that ends on 30 June of the
// given year.
func FinancialYearEnding(year int) Range {
	return Range{From: NewDate(year-1, time.July, 1), To: NewDate(year, time.June, 30)}
}

// ParseFinancialYear parses a financial year given by its ending year, e.g.
// "2025" for 1 July 2024 to 30 June 2025.
func ParseFinancialYear(s string) (Range, error) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1000 || year > 9999 {
		return Range{}, fmt.Errorf("invalid financial year %q: want the ending year, e.g. 2025", s)
	}
	return FinancialYearEnding(year), nil
}

// LatestFinancialYear returns the financial year containing the most recent
// sell in the ledger. It fails when the ledger holds no sell at all, since
// there is nothing to report on.
func (l *Ledger) LatestFinancialYear() (Range, error) {
	latest, ok := l.LatestSell()
	if !ok {
		return Range{}, errNoSells
	}
	return FinancialYear(latest), nil
}
