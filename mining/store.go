/*
store.go - Persistence interface for production records

PURPOSE:
  Defines the interface between the domain logic and the database.
  Both tables are append-only: records are inserted once and never
  updated or deleted by this system.

APPEND-ONLY CONTRACT:
  - InsertAggregate() / InsertWorker() are the ONLY write operations
  - NO Update() or Delete() methods exist

ORDERING:
  - Latest* and List* order by the autoincrement id, i.e. insertion order
  - ListAggregatesByDate orders chronologically (year, month, day) for
    the time-series chart

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: Production SQLite store
  - mining/store/memory.go: In-memory store for testing

SEE ALSO:
  - recorder.go: Higher-level interface using Store
*/
package mining

import "context"

// Store handles persistence of production records.
type Store interface {
	// InsertAggregate persists one aggregate record inside a scoped
	// transaction and returns it with its assigned id.
	InsertAggregate(ctx context.Context, rec AggregateRecord) (AggregateRecord, error)

	// InsertWorker persists one worker record inside a scoped
	// transaction and returns it with its assigned id.
	InsertWorker(ctx context.Context, rec WorkerRecord) (WorkerRecord, error)

	// LatestAggregate returns the most recently inserted aggregate
	// record, or ErrNoData if the table is empty.
	LatestAggregate(ctx context.Context) (AggregateRecord, error)

	// LatestWorker returns the most recently inserted worker record,
	// or ErrNoData if the table is empty.
	LatestWorker(ctx context.Context) (WorkerRecord, error)

	// ListAggregates returns all aggregate records in insertion order.
	ListAggregates(ctx context.Context) ([]AggregateRecord, error)

	// ListWorkers returns all worker records in insertion order.
	ListWorkers(ctx context.Context) ([]WorkerRecord, error)

	// ListAggregatesByDate returns all aggregate records ordered
	// chronologically by their year/month/day columns.
	ListAggregatesByDate(ctx context.Context) ([]AggregateRecord, error)
}
