// Package cgt computes Australian capital gains tax figures from CommSec
// trade-statement CSV files. It is designed to be local-first and auditable:
// the input is the broker's own statement, the output is a flat summary CSV
// and a transaction-level log that can be checked line by line.
//
// The core functionalities include:
//   - Statement Import: Resolving the statement's column layout by header
//     name and parsing Buy/Sell rows into an immutable, chronological ledger.
//   - Lot Matching: Consuming open buy lots with each sell under a selectable
//     policy (FIFO or MinimizeCGT), tracking partial lot consumption.
//   - Discount Rule: Applying the 12-month 50% CGT discount to long-term
//     gains, with a configurable long-term boundary.
//   - Reporting: Aggregating matches into per-security and total gains,
//     losses and net figures for a financial year, plus residual holdings
//     for portfolio verification.
//
// This package serves as the foundational logic for the `ccg` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package cgt
