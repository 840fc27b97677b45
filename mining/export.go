/*
export.go - CSV export of production records

PURPOSE:
  Serializes full tables into CSV documents, generated in memory so that
  concurrent export requests never clobber each other on disk.

HEADER CONTRACT:
  The column labels and their order are part of the export contract and
  must not change (the aggregate headers are Hungarian, matching the
  original spreadsheets these exports feed):

    aggregate: ID, Év, Hónap, Nap, Aranytermelés, Ezüsttermelés, Gyémánttermelés
    worker:    ID, Name, Date, Gold, Silver, Diamond

EMPTY TABLES:
  An empty table yields ErrNoData, never a header-only file.
*/
package mining

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// AggregateCSVHeader is the fixed header row for aggregate exports.
var AggregateCSVHeader = []string{"ID", "Év", "Hónap", "Nap", "Aranytermelés", "Ezüsttermelés", "Gyémánttermelés"}

// WorkerCSVHeader is the fixed header row for worker exports.
var WorkerCSVHeader = []string{"ID", "Name", "Date", "Gold", "Silver", "Diamond"}

// AggregateCSV renders aggregate records as a CSV document.
// Records are written in the order given (callers pass insertion order).
func AggregateCSV(records []AggregateRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(AggregateCSVHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			strconv.Itoa(r.Year),
			strconv.Itoa(r.Month),
			strconv.Itoa(r.Day),
			strconv.FormatInt(r.Gold, 10),
			strconv.FormatInt(r.Silver, 10),
			r.Diamond.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// WorkerCSV renders worker records as a CSV document.
func WorkerCSV(records []WorkerRecord) ([]byte, error) {
	if len(records) == 0 {
		return nil, ErrNoData
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(WorkerCSVHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Name,
			r.Date.Format(DateLayout),
			strconv.FormatInt(r.Gold, 10),
			strconv.FormatInt(r.Silver, 10),
			r.Diamond.String(),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
