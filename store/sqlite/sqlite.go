/*
Package sqlite provides the SQLite-backed implementation of the storage
interface.

PURPOSE:
  Implements mining.Store using SQLite. The same patterns apply to any
  SQL database - only minor dialect differences.

KEY TABLES:
  termeles:         Aggregate daily production, date split into
                    ev/honap/nap integer columns (legacy schema,
                    preserved so existing databases keep working)
  dwarf_as_workers: Per-worker daily entries, date stored whole

APPEND-ONLY ENFORCEMENT:
  No UPDATE or DELETE statements exist anywhere in this package.

SCOPED TRANSACTIONS:
  Every insert runs inside its own SQL transaction: begin, insert,
  commit, with rollback deferred on every exit path. A record is either
  fully committed or absent.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

DECIMAL COLUMNS:
  Diamond quantities are stored as TEXT holding the decimal string, so
  fractional values round-trip without float drift.

USAGE:
  store, err := sqlite.New("./data/termeles.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - mining/store.go: Interface definition
  - mining/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/minehall/production-ledger/mining"
)

// Store implements mining.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Aggregate daily production (append-only)
	CREATE TABLE IF NOT EXISTS termeles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ev INTEGER NOT NULL,
		honap INTEGER NOT NULL,
		nap INTEGER NOT NULL,
		aranytermeles INTEGER NOT NULL DEFAULT 0,
		ezusttermeles INTEGER NOT NULL DEFAULT 0,
		gyemanttermeles TEXT NOT NULL DEFAULT '0'
	);

	-- Chronological ordering for the time-series chart
	CREATE INDEX IF NOT EXISTS idx_termeles_date
		ON termeles(ev, honap, nap);

	-- Per-worker daily production (append-only)
	CREATE TABLE IF NOT EXISTS dwarf_as_workers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		date TEXT NOT NULL,
		gold INTEGER NOT NULL DEFAULT 0,
		silver INTEGER NOT NULL DEFAULT 0,
		diamond TEXT NOT NULL DEFAULT '0'
	);

	CREATE INDEX IF NOT EXISTS idx_dwarf_workers_date
		ON dwarf_as_workers(date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// WRITES - One scoped transaction per record
// =============================================================================

// InsertAggregate persists an aggregate record in its own transaction.
func (s *Store) InsertAggregate(ctx context.Context, rec mining.AggregateRecord) (mining.AggregateRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mining.AggregateRecord{}, storageErr("begin transaction", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO termeles (ev, honap, nap, aranytermeles, ezusttermeles, gyemanttermeles)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Year, rec.Month, rec.Day, rec.Gold, rec.Silver, rec.Diamond.String(),
	)
	if err != nil {
		return mining.AggregateRecord{}, storageErr("insert aggregate record", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return mining.AggregateRecord{}, storageErr("read inserted id", err)
	}

	if err := tx.Commit(); err != nil {
		return mining.AggregateRecord{}, storageErr("commit aggregate record", err)
	}

	rec.ID = id
	return rec, nil
}

// InsertWorker persists a worker record in its own transaction.
func (s *Store) InsertWorker(ctx context.Context, rec mining.WorkerRecord) (mining.WorkerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mining.WorkerRecord{}, storageErr("begin transaction", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO dwarf_as_workers (name, date, gold, silver, diamond)
		VALUES (?, ?, ?, ?, ?)`,
		rec.Name, rec.Date.Format(mining.DateLayout), rec.Gold, rec.Silver, rec.Diamond.String(),
	)
	if err != nil {
		return mining.WorkerRecord{}, storageErr("insert worker record", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return mining.WorkerRecord{}, storageErr("read inserted id", err)
	}

	if err := tx.Commit(); err != nil {
		return mining.WorkerRecord{}, storageErr("commit worker record", err)
	}

	rec.ID = id
	return rec, nil
}

// =============================================================================
// READS
// =============================================================================

// LatestAggregate returns the most recently inserted aggregate record.
func (s *Store) LatestAggregate(ctx context.Context) (mining.AggregateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, ev, honap, nap, aranytermeles, ezusttermeles, gyemanttermeles
		FROM termeles
		ORDER BY id DESC
		LIMIT 1`)

	rec, err := scanAggregate(row)
	if errors.Is(err, sql.ErrNoRows) {
		return mining.AggregateRecord{}, mining.ErrNoData
	}
	if err != nil {
		return mining.AggregateRecord{}, storageErr("query latest aggregate", err)
	}
	return rec, nil
}

// LatestWorker returns the most recently inserted worker record.
func (s *Store) LatestWorker(ctx context.Context) (mining.WorkerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, date, gold, silver, diamond
		FROM dwarf_as_workers
		ORDER BY id DESC
		LIMIT 1`)

	rec, err := scanWorker(row)
	if errors.Is(err, sql.ErrNoRows) {
		return mining.WorkerRecord{}, mining.ErrNoData
	}
	if err != nil {
		return mining.WorkerRecord{}, storageErr("query latest worker", err)
	}
	return rec, nil
}

// ListAggregates returns all aggregate records in insertion order.
func (s *Store) ListAggregates(ctx context.Context) ([]mining.AggregateRecord, error) {
	return s.queryAggregates(ctx, `
		SELECT id, ev, honap, nap, aranytermeles, ezusttermeles, gyemanttermeles
		FROM termeles
		ORDER BY id ASC`)
}

// ListAggregatesByDate returns all aggregate records in chronological order.
func (s *Store) ListAggregatesByDate(ctx context.Context) ([]mining.AggregateRecord, error) {
	return s.queryAggregates(ctx, `
		SELECT id, ev, honap, nap, aranytermeles, ezusttermeles, gyemanttermeles
		FROM termeles
		ORDER BY ev ASC, honap ASC, nap ASC`)
}

// ListWorkers returns all worker records in insertion order.
func (s *Store) ListWorkers(ctx context.Context) ([]mining.WorkerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, date, gold, silver, diamond
		FROM dwarf_as_workers
		ORDER BY id ASC`)
	if err != nil {
		return nil, storageErr("query workers", err)
	}
	defer rows.Close()

	var records []mining.WorkerRecord
	for rows.Next() {
		rec, err := scanWorker(rows)
		if err != nil {
			return nil, storageErr("scan worker row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate worker rows", err)
	}
	return records, nil
}

func (s *Store) queryAggregates(ctx context.Context, query string) ([]mining.AggregateRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storageErr("query aggregates", err)
	}
	defer rows.Close()

	var records []mining.AggregateRecord
	for rows.Next() {
		rec, err := scanAggregate(rows)
		if err != nil {
			return nil, storageErr("scan aggregate row", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate aggregate rows", err)
	}
	return records, nil
}

// =============================================================================
// ROW SCANNING
// =============================================================================

type scanner interface {
	Scan(dest ...any) error
}

func scanAggregate(row scanner) (mining.AggregateRecord, error) {
	var rec mining.AggregateRecord
	var diamond string
	if err := row.Scan(&rec.ID, &rec.Year, &rec.Month, &rec.Day, &rec.Gold, &rec.Silver, &diamond); err != nil {
		return mining.AggregateRecord{}, err
	}
	d, err := decimal.NewFromString(diamond)
	if err != nil {
		return mining.AggregateRecord{}, fmt.Errorf("corrupt diamond value %q: %w", diamond, err)
	}
	rec.Diamond = d
	return rec, nil
}

func scanWorker(row scanner) (mining.WorkerRecord, error) {
	var rec mining.WorkerRecord
	var date, diamond string
	if err := row.Scan(&rec.ID, &rec.Name, &date, &rec.Gold, &rec.Silver, &diamond); err != nil {
		return mining.WorkerRecord{}, err
	}
	parsed, err := time.Parse(mining.DateLayout, date)
	if err != nil {
		return mining.WorkerRecord{}, fmt.Errorf("corrupt date value %q: %w", date, err)
	}
	rec.Date = parsed
	d, err := decimal.NewFromString(diamond)
	if err != nil {
		return mining.WorkerRecord{}, fmt.Errorf("corrupt diamond value %q: %w", diamond, err)
	}
	rec.Diamond = d
	return rec, nil
}

// storageErr tags database failures so the HTTP layer maps them to 5xx.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, mining.ErrStorage, err)
}
