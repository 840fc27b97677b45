/*
dto.go - Data Transfer Objects for API responses

PURPOSE:
  Defines the JSON structures returned to clients. These decouple the
  internal record types from the external contract: the aggregate
  endpoint speaks the legacy Hungarian field names (arany/ezust/gyemant)
  while the worker endpoint uses English ones, and both contracts are
  frozen - the entry form and downstream spreadsheets depend on them.

  Diamond quantities are decimal internally and become plain JSON
  numbers here.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

// AggregateProductionDTO is the latest-aggregate query response.
type AggregateProductionDTO struct {
	Arany   int64   `json:"arany"`
	Ezust   int64   `json:"ezust"`
	Gyemant float64 `json:"gyemant"`
}

// WorkerProductionDTO is the latest-worker query response.
type WorkerProductionDTO struct {
	Gold    int64   `json:"gold"`
	Silver  int64   `json:"silver"`
	Diamond float64 `json:"diamond"`
}

// MessageResponse wraps success messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse wraps error messages.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
