/*
validate.go - Input validation for production records

PURPOSE:
  Checks form input before anything touches the database: the date must
  parse under the fixed YYYY-MM-DD layout, every quantity must be
  non-negative, and worker names must be non-empty.

  Validation returns explicit errors instead of panicking or raising;
  callers cannot accidentally let a bad date propagate as a fault.

SEE ALSO:
  - errors.go: ValidationError
  - recorder.go: Calls these before persisting
*/
package mining

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MsgPositiveValues is the user-facing message for negative quantities.
// The wording is part of the form contract and predates this service.
const MsgPositiveValues = "Positive values are needed!"

// ParseDate parses a form date under the strict YYYY-MM-DD layout.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &ValidationError{Field: "datum", Reason: "must match YYYY-MM-DD"}
	}
	return t, nil
}

// checkQuantities enforces non-negativity on all three quantity fields.
func checkQuantities(gold, silver int64, diamond decimal.Decimal) error {
	switch {
	case gold < 0:
		return &ValidationError{Field: "gold", Reason: MsgPositiveValues}
	case silver < 0:
		return &ValidationError{Field: "silver", Reason: MsgPositiveValues}
	case diamond.IsNegative():
		return &ValidationError{Field: "diamond", Reason: MsgPositiveValues}
	}
	return nil
}

// Validate checks an aggregate submission and returns the parsed date.
func (in AggregateInput) Validate() (time.Time, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return time.Time{}, err
	}
	if err := checkQuantities(in.Gold, in.Silver, in.Diamond); err != nil {
		return time.Time{}, err
	}
	return date, nil
}

// Validate checks a worker submission and returns the parsed date.
func (in WorkerInput) Validate() (time.Time, error) {
	if strings.TrimSpace(in.Name) == "" {
		return time.Time{}, &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	date, err := ParseDate(in.Date)
	if err != nil {
		return time.Time{}, err
	}
	if err := checkQuantities(in.Gold, in.Silver, in.Diamond); err != nil {
		return time.Time{}, err
	}
	return date, nil
}
