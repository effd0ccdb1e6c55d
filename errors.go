package cgt

import "fmt"

// FormatError reports a malformed statement row. Import continues with the
// remaining rows, so callers receive the valid transactions alongside the
// row errors.
type FormatError struct {
	File string // statement file the row came from
	Line int    // 1-based record number within the file
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// OversoldError reports a security whose sells exceed its open buy lots.
// This is a data error in the statement, not a matching concern: the
// security's output is omitted, other securities are unaffected.
type OversoldError struct {
	Security string
	Date     Date     // sell date on which the open lots ran dry
	Short    Quantity // unmatched remainder of that sell
}

func (e *OversoldError) Error() string {
	return fmt.Sprintf("%s: sell on %s exceeds open lots by %s shares", e.Security, e.Date, e.Short)
}
