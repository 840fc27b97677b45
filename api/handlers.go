/*
handlers.go - HTTP handlers for the production ledger

PURPOSE:
  Exposes record entry, latest-record queries, CSV export, and the
  time-series chart over HTTP. Handles form parsing and JSON
  serialization, delegates everything else to the mining package.

ENDPOINTS:
  POST /submit                      Record aggregate daily production
  POST /submit-dwarf                Record one worker's daily production
  GET  /query_last_production_data  Latest aggregate record
  GET  /query_latest_dwarf_data     Latest worker record
  GET  /export-csv-termeles         Aggregate table as CSV attachment
  GET  /export-csv-dwarf            Worker table as CSV attachment
  GET  /plot-data                   PNG line chart of aggregate series
  GET  /form                        HTML entry form
  GET  /healthz                     Liveness probe

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status, the same
  mapping on every path:
  - 400: Validation errors (negative value, bad date, malformed field)
  - 404: Query or export against an empty table
  - 500: Storage failures

EXPORT GENERATION:
  CSV and PNG bodies are built in memory and streamed straight to the
  response. Nothing is written to local disk, so concurrent exports
  cannot clobber each other.

SEE ALSO:
  - dto.go: Response data structures
  - server.go: Router setup and middleware
  - mining/recorder.go: The validate-then-persist pipeline
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/minehall/production-ledger/mining"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    mining.Store
	Recorder *mining.Recorder
}

// NewHandler creates a new handler over the given store.
func NewHandler(store mining.Store) *Handler {
	return &Handler{
		Store:    store,
		Recorder: mining.NewRecorder(store),
	}
}

// =============================================================================
// SUBMISSION HANDLERS
// =============================================================================

// SubmitAggregate records one day's total production.
// POST /submit (form fields: datum, arany, ezust, gyemant)
func (h *Handler) SubmitAggregate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed form body", err)
		return
	}

	arany, err := formInt(r, "arany")
	if err != nil {
		writeValidation(w, err)
		return
	}
	ezust, err := formInt(r, "ezust")
	if err != nil {
		writeValidation(w, err)
		return
	}
	gyemant, err := formDecimal(r, "gyemant")
	if err != nil {
		writeValidation(w, err)
		return
	}

	_, err = h.Recorder.RecordAggregate(r.Context(), mining.AggregateInput{
		Date:    r.PostFormValue("datum"),
		Gold:    arany,
		Silver:  ezust,
		Diamond: gyemant,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Data inserted successfully!"})
}

// SubmitWorker records one worker's production for one day.
// POST /submit-dwarf (form fields: name, datum, gold, silver, diamond)
func (h *Handler) SubmitWorker(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed form body", err)
		return
	}

	gold, err := formInt(r, "gold")
	if err != nil {
		writeValidation(w, err)
		return
	}
	silver, err := formInt(r, "silver")
	if err != nil {
		writeValidation(w, err)
		return
	}
	diamond, err := formDecimal(r, "diamond")
	if err != nil {
		writeValidation(w, err)
		return
	}

	_, err = h.Recorder.RecordWorker(r.Context(), mining.WorkerInput{
		Name:    r.PostFormValue("name"),
		Date:    r.PostFormValue("datum"),
		Gold:    gold,
		Silver:  silver,
		Diamond: diamond,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Dwarf data inserted successfully!"})
}

// =============================================================================
// QUERY HANDLERS
// =============================================================================

// LatestAggregate returns the most recently inserted aggregate record.
// GET /query_last_production_data
func (h *Handler) LatestAggregate(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.LatestAggregate(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, AggregateProductionDTO{
		Arany:   rec.Gold,
		Ezust:   rec.Silver,
		Gyemant: rec.Diamond.InexactFloat64(),
	})
}

// LatestWorker returns the most recently inserted worker record.
// GET /query_latest_dwarf_data
func (h *Handler) LatestWorker(w http.ResponseWriter, r *http.Request) {
	rec, err := h.Store.LatestWorker(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, WorkerProductionDTO{
		Gold:    rec.Gold,
		Silver:  rec.Silver,
		Diamond: rec.Diamond.InexactFloat64(),
	})
}

// =============================================================================
// EXPORT HANDLERS
// =============================================================================

// ExportAggregateCSV streams the full aggregate table as CSV.
// GET /export-csv-termeles
func (h *Handler) ExportAggregateCSV(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListAggregates(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	body, err := mining.AggregateCSV(records)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeCSV(w, "ossztermeles_export.csv", body)
}

// ExportWorkerCSV streams the full worker table as CSV.
// GET /export-csv-dwarf
func (h *Handler) ExportWorkerCSV(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListWorkers(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	body, err := mining.WorkerCSV(records)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeCSV(w, "egyeni_termeles_export.csv", body)
}

// PlotData renders the aggregate time series as a PNG line chart.
// GET /plot-data
func (h *Handler) PlotData(w http.ResponseWriter, r *http.Request) {
	records, err := h.Store.ListAggregatesByDate(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	png, err := mining.RenderTimeSeries(records)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// Healthz is a liveness probe.
// GET /healthz
func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
}

// =============================================================================
// FORM PARSING HELPERS
// =============================================================================

func formInt(r *http.Request, field string) (int64, error) {
	raw := r.PostFormValue(field)
	if raw == "" {
		return 0, &mining.ValidationError{Field: field, Reason: "missing"}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, &mining.ValidationError{Field: field, Reason: "must be an integer"}
	}
	return v, nil
}

func formDecimal(r *http.Request, field string) (decimal.Decimal, error) {
	raw := r.PostFormValue(field)
	if raw == "" {
		return decimal.Zero, &mining.ValidationError{Field: field, Reason: "missing"}
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &mining.ValidationError{Field: field, Reason: "must be a number"}
	}
	return v, nil
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeValidation(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, err.Error(), nil)
}

// writeDomainError maps domain errors onto HTTP statuses. The mapping is
// uniform across every endpoint: client input 400, empty table 404,
// anything else 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case mining.IsClientError(err):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	case mining.IsNotFound(err):
		writeError(w, http.StatusNotFound, "No data found", nil)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

func writeCSV(w http.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
