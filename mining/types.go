/*
Package mining provides the core domain types and logic for the mine
production ledger.

PURPOSE:
  This package contains the record types, input validation, and the
  recording pipeline for daily production data. Two record shapes exist:
  aggregate daily totals across the whole mine, and per-worker daily
  entries.

KEY CONCEPTS IN THIS FILE (types.go):
  - AggregateRecord: One day's total gold/silver/diamond output,
    with the date decomposed into year/month/day columns
  - WorkerRecord: One worker's output on one day, date kept whole
  - AggregateInput/WorkerInput: Raw form values before validation

DESIGN PRINCIPLES:
  1. Append-only: records are created once and never updated or deleted
  2. Precision: diamond quantities use decimal.Decimal, not float64,
     so fractional carats survive storage and export intact
  3. The date asymmetry between the two tables (split columns vs a
     single date value) mirrors the storage schema on purpose

SEE ALSO:
  - validate.go: Input validation
  - recorder.go: Validate-then-persist pipeline
  - store.go: Persistence interface
*/
package mining

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the only accepted date format for form input.
const DateLayout = "2006-01-02"

// =============================================================================
// RECORDS - Persisted shapes
// =============================================================================

// AggregateRecord is one day's total production across all workers.
// The calendar date is stored decomposed into Year/Month/Day.
type AggregateRecord struct {
	ID      int64
	Year    int
	Month   int
	Day     int
	Gold    int64
	Silver  int64
	Diamond decimal.Decimal
}

// Date reassembles the decomposed date columns.
func (r AggregateRecord) Date() time.Time {
	return time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC)
}

// WorkerRecord is one worker's production on one day.
type WorkerRecord struct {
	ID      int64
	Name    string
	Date    time.Time
	Gold    int64
	Silver  int64
	Diamond decimal.Decimal
}

// =============================================================================
// INPUTS - Pre-validation form values
// =============================================================================

// AggregateInput carries the raw aggregate form submission.
type AggregateInput struct {
	Date    string
	Gold    int64
	Silver  int64
	Diamond decimal.Decimal
}

// WorkerInput carries the raw worker form submission.
type WorkerInput struct {
	Name    string
	Date    string
	Gold    int64
	Silver  int64
	Diamond decimal.Decimal
}
