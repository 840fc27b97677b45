/*
errors.go - Centralized error types for the production ledger domain

PURPOSE:
  All domain error types in one place for consistency and discoverability.
  The HTTP layer maps these onto status codes; nothing here knows about HTTP.

ERROR CATEGORIES:
  1. Validation errors - Bad input shape (unparseable date, negative value)
  2. Not-found errors  - Queries against an empty table
  3. Storage errors    - Database-level failures

USAGE:
  Callers branch with the helpers rather than errors.Is chains:

    if mining.IsClientError(err) {
        // 4xx
    }

SEE ALSO:
  - validate.go: Produces ValidationError
  - store.go: Implementations return ErrNoData / wrap ErrStorage
*/
package mining

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidInput is the root of all validation failures.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoData is returned when a query or export finds an empty table.
	ErrNoData = errors.New("no data found")

	// ErrStorage is returned when a write or read fails at the database.
	ErrStorage = errors.New("storage failure")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError reports which field failed and why. The original system
// collapsed every validation failure into a single message; keeping the
// field and reason separate lets callers distinguish an unparseable date
// from a negative quantity.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsNotFound returns true if the error indicates an empty table.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNoData)
}
