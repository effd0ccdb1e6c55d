package cgt

import "fmt"

// LongTermRule defines when a holding period qualifies for the 12-month
// CGT discount. The exact boundary is a policy choice, so it is configurable.
type LongTermRule int

const (
	// CalendarYears qualifies a holding of at least one calendar year
	// (buy date + 1 year <= sell date).
	CalendarYears LongTermRule = iota
	// Days365 qualifies a holding of at least 365 days.
	Days365
)

func (r LongTermRule) String() string {
	switch r {
	case CalendarYears:
		return "calendar"
	case Days365:
		return "365d"
	default:
		return "unknown"
	}
}

// ParseLongTermRule parses a string into a LongTermRule.
func ParseLongTermRule(s string) (LongTermRule, error) {
	switch s {
	case "calendar":
		return CalendarYears, nil
	case "365d":
		return Days365, nil
	default:
		return 0, fmt.Errorf("unknown long-term rule: %q", s)
	}
}

// LongTerm reports whether a lot bought on 'buy' and sold on 'sell'
// qualifies as long-term under the rule.
func (r LongTermRule) LongTerm(buy, sell Date) bool {
	switch r {
	case CalendarYears:
		return !sell.Before(buy.AddYears(1))
	case Days365:
		return buy.DaysUntil(sell) >= 365
	default:
		panic("unknown long-term rule")
	}
}
