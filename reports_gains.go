package cgt

import "errors"

// errNoSells is returned when a report is requested on a ledger without sells.
var errNoSells = errors.New("no sell transactions found in the statements")

// SecurityGains holds the taxed outcome for a single security over the period.
type SecurityGains struct {
	Security  string
	Gains     Money // sum of positive taxed gains
	Losses    Money // sum of taxed losses, as a negative amount
	Net       Money
	LongTerm  Money    // net taxed outcome of long-term matches
	ShortTerm Money    // net taxed outcome of short-term matches
	Holding   Quantity // shares still held after all matching
}

// GainsReport contains the results of a capital gains calculation.
// Only securities with at least one sell inside the period appear; sells
// before the period still consume lots but contribute nothing to the totals.
type GainsReport struct {
	Period     Range
	Config     Config
	Securities []SecurityGains
	Matches    []Match // matches whose sell falls within the period, in date order
	Gains      Money
	Losses     Money
	Net        Money
	LongTerm   Money
	ShortTerm  Money
	Oversold   []*OversoldError // securities omitted because of bad statement data
}

// CalculateGains matches the whole ledger and aggregates the matches falling
// within the reporting period into per-security and total figures.
func (l *Ledger) CalculateGains(period Range, cfg Config) *GainsReport {
	zero := M(0, DefaultCurrency)
	report := &GainsReport{
		Period: period, Config: cfg,
		Gains: zero, Losses: zero, Net: zero, LongTerm: zero, ShortTerm: zero,
	}

	for _, ticker := range l.Securities() {
		if !l.SoldWithin(ticker, period) {
			continue
		}
		matches, open, err := MatchSecurity(ticker, l.Security(ticker), cfg)
		if err != nil {
			var oversold *OversoldError
			if errors.As(err, &oversold) {
				report.Oversold = append(report.Oversold, oversold)
			}
			continue
		}

		sec := SecurityGains{
			Security: ticker, Holding: open.open(),
			Gains: zero, Losses: zero, Net: zero, LongTerm: zero, ShortTerm: zero,
		}
		for _, m := range matches {
			if !period.Contains(m.SellDate) {
				continue
			}
			report.Matches = append(report.Matches, m)
			sec.Net = sec.Net.Add(m.Taxed)
			if m.Taxed.IsNegative() {
				sec.Losses = sec.Losses.Add(m.Taxed)
			} else {
				sec.Gains = sec.Gains.Add(m.Taxed)
			}
			if m.LongTerm {
				sec.LongTerm = sec.LongTerm.Add(m.Taxed)
			} else {
				sec.ShortTerm = sec.ShortTerm.Add(m.Taxed)
			}
		}
		report.Securities = append(report.Securities, sec)

		report.Gains = report.Gains.Add(sec.Gains)
		report.Losses = report.Losses.Add(sec.Losses)
		report.Net = report.Net.Add(sec.Net)
		report.LongTerm = report.LongTerm.Add(sec.LongTerm)
		report.ShortTerm = report.ShortTerm.Add(sec.ShortTerm)
	}
	return report
}
