package cgt

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// this file handles the statement import format and the summary export format.

// summaryPrefix names the exported report files; exported files found among
// the inputs are skipped so a previous run's output is never re-imported.
const summaryPrefix = "capital_gains_summary"

// normalizeHeader normalizes a header cell by removing "($)", replacing "+"
// with "_", then lowercasing, trimming, and replacing spaces with underscores.
func normalizeHeader(h string) string {
	h = strings.ReplaceAll(h, "($)", "")
	h = strings.ReplaceAll(h, "+", "_")
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}

// statementSchema maps the required statement columns to their indices.
// Resolution is by header name, so extra or reordered columns are harmless.
type statementSchema struct {
	code, date, typ, quantity, value int
}

// width returns the minimum record length a data row must have.
func (s statementSchema) width() int {
	w := s.code
	for _, i := range []int{s.date, s.typ, s.quantity, s.value} {
		if i > w {
			w = i
		}
	}
	return w + 1
}

// resolveSchema resolves the required columns in a candidate header row.
func resolveSchema(header []string) (statementSchema, bool) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		name := normalizeHeader(h)
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	s := statementSchema{}
	for name, field := range map[string]*int{
		"code":        &s.code,
		"date":        &s.date,
		"type":        &s.typ,
		"quantity":    &s.quantity,
		"total_value": &s.value,
	} {
		i, ok := index[name]
		if !ok {
			return statementSchema{}, false
		}
		*field = i
	}
	return s, true
}

// parseQuantity parses a statement quantity cell: a positive integer.
// The statement's sign convention is discarded.
func parseQuantity(s string) (Quantity, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	s = strings.TrimPrefix(s, "-")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: want a whole number of shares", s)
	}
	if n <= 0 {
		return Quantity{}, fmt.Errorf("invalid quantity %d: must be positive", n)
	}
	return Q(n), nil
}

// parseValue parses a statement Total Value cell into a positive Money.
// The statement's sign convention (buys negative) is discarded.
func parseValue(s string) (Money, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "-")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("invalid total value %q: %w", s, err)
	}
	if !d.IsPositive() {
		return Money{}, fmt.Errorf("invalid total value %q: must be positive", s)
	}
	return M(d, DefaultCurrency), nil
}

// ImportStatement reads one CommSec statement from r.
//
// CommSec statements carry preamble lines before the table, so the header is
// located as the first record whose cells resolve every required column by
// name. Rows after the table (blank or short footer lines) end the import.
//
// Malformed rows are returned as FormatErrors alongside the transactions
// parsed from the valid rows; only an unreadable stream or a missing header
// is fatal.
func ImportStatement(name string, r io.Reader) ([]Transaction, []*FormatError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // preamble lines are not table-shaped
	cr.TrimLeadingSpace = true

	var (
		txs     []Transaction
		rowErrs []*FormatError
		schema  statementSchema
		line    int
		inTable bool
	)
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("cannot read statement %q: %w", name, err)
		}
		line++

		if !inTable {
			if s, ok := resolveSchema(record); ok {
				schema, inTable = s, true
			}
			continue
		}

		// A blank or short record marks the statement footer.
		if len(record) < schema.width() || strings.TrimSpace(record[schema.code]) == "" {
			break
		}

		tx, err := parseRow(record, schema)
		if err != nil {
			rowErrs = append(rowErrs, &FormatError{File: name, Line: line, Err: err})
			continue
		}
		txs = append(txs, tx)
	}

	if !inTable {
		return nil, nil, fmt.Errorf("statement %q: no header row with columns Code, Date, Type, Quantity, Total Value", name)
	}
	return txs, rowErrs, nil
}

// parseRow converts one resolved statement record into a Transaction.
func parseRow(record []string, schema statementSchema) (Transaction, error) {
	code := strings.TrimSpace(record[schema.code])

	day, err := ParseDate(record[schema.date])
	if err != nil {
		return Transaction{}, err
	}
	typ, err := ParseTransactionType(record[schema.typ])
	if err != nil {
		return Transaction{}, err
	}
	quantity, err := parseQuantity(record[schema.quantity])
	if err != nil {
		return Transaction{}, err
	}
	value, err := parseValue(record[schema.value])
	if err != nil {
		return Transaction{}, err
	}

	return Transaction{Security: code, Date: day, Type: typ, Quantity: quantity, Amount: value}, nil
}

// ImportStatements opens and merges several statement files into one ledger.
// Files that are not CSVs, and summary files exported by a previous run, are
// silently skipped.
func ImportStatements(names ...string) (*Ledger, []*FormatError, error) {
	ledger := NewLedger()
	var rowErrs []*FormatError

	for _, name := range names {
		base := filepath.Base(name)
		if !strings.EqualFold(filepath.Ext(base), ".csv") || strings.Contains(base, summaryPrefix) {
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open statement %q: %w", name, err)
		}
		txs, errs, err := ImportStatement(name, f)
		f.Close()
		if err != nil {
			return nil, nil, err
		}
		ledger.Append(txs...)
		rowErrs = append(rowErrs, errs...)
	}
	return ledger, rowErrs, nil
}

// ExportSummary writes the tabular gains summary to w in CSV form:
// one row per security with its gains, losses and net, then a Total row.
func ExportSummary(w io.Writer, report *GainsReport) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Security", "Gains", "Losses", "Net"}); err != nil {
		return err
	}
	for _, sec := range report.Securities {
		record := []string{sec.Security, sec.Gains.StringFixed(), sec.Losses.StringFixed(), sec.Net.StringFixed()}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	total := []string{"Total", report.Gains.StringFixed(), report.Losses.StringFixed(), report.Net.StringFixed()}
	if err := cw.Write(total); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
