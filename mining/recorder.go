/*
recorder.go - Validate-then-persist pipeline

PURPOSE:
  The Recorder is the only path by which records are created. Each call
  validates the raw input, normalizes the date, constructs the record,
  and hands it to the Store, which commits it in a scoped transaction.

FAILURE MODES:
  - ValidationError (wraps ErrInvalidInput): caller input invalid,
    nothing was written
  - ErrStorage-wrapped errors: the commit failed, the transaction was
    rolled back, nothing was written

  Partial writes never occur; each record is a single-row transaction.

SEE ALSO:
  - validate.go: Input checks
  - store.go: Persistence interface
*/
package mining

import (
	"context"
	"fmt"
)

// Recorder validates production input and persists it.
type Recorder struct {
	store Store
}

// NewRecorder creates a Recorder backed by the given store.
func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// RecordAggregate validates an aggregate submission, decomposes its date
// into year/month/day, and persists the record.
func (r *Recorder) RecordAggregate(ctx context.Context, in AggregateInput) (AggregateRecord, error) {
	date, err := in.Validate()
	if err != nil {
		return AggregateRecord{}, err
	}

	rec := AggregateRecord{
		Year:    date.Year(),
		Month:   int(date.Month()),
		Day:     date.Day(),
		Gold:    in.Gold,
		Silver:  in.Silver,
		Diamond: in.Diamond,
	}

	saved, err := r.store.InsertAggregate(ctx, rec)
	if err != nil {
		return AggregateRecord{}, fmt.Errorf("record aggregate production: %w", err)
	}
	return saved, nil
}

// RecordWorker validates a worker submission and persists the record.
func (r *Recorder) RecordWorker(ctx context.Context, in WorkerInput) (WorkerRecord, error) {
	date, err := in.Validate()
	if err != nil {
		return WorkerRecord{}, err
	}

	rec := WorkerRecord{
		Name:    in.Name,
		Date:    date,
		Gold:    in.Gold,
		Silver:  in.Silver,
		Diamond: in.Diamond,
	}

	saved, err := r.store.InsertWorker(ctx, rec)
	if err != nil {
		return WorkerRecord{}, fmt.Errorf("record worker production: %w", err)
	}
	return saved, nil
}
