// Package store provides Store implementations.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/minehall/production-ledger/mining"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu         sync.RWMutex
	aggregates []mining.AggregateRecord
	workers    []mining.WorkerRecord
}

func NewMemory() *Memory {
	return &Memory{}
}

// InsertAggregate appends an aggregate record. Append-only.
// Ids count per table from 1, like SQLite autoincrement.
func (m *Memory) InsertAggregate(_ context.Context, rec mining.AggregateRecord) (mining.AggregateRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = int64(len(m.aggregates) + 1)
	m.aggregates = append(m.aggregates, rec)
	return rec, nil
}

// InsertWorker appends a worker record. Append-only.
func (m *Memory) InsertWorker(_ context.Context, rec mining.WorkerRecord) (mining.WorkerRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec.ID = int64(len(m.workers) + 1)
	m.workers = append(m.workers, rec)
	return rec, nil
}

func (m *Memory) LatestAggregate(_ context.Context) (mining.AggregateRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.aggregates) == 0 {
		return mining.AggregateRecord{}, mining.ErrNoData
	}
	return m.aggregates[len(m.aggregates)-1], nil
}

func (m *Memory) LatestWorker(_ context.Context) (mining.WorkerRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.workers) == 0 {
		return mining.WorkerRecord{}, mining.ErrNoData
	}
	return m.workers[len(m.workers)-1], nil
}

func (m *Memory) ListAggregates(_ context.Context) ([]mining.AggregateRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]mining.AggregateRecord, len(m.aggregates))
	copy(out, m.aggregates)
	return out, nil
}

func (m *Memory) ListWorkers(_ context.Context) ([]mining.WorkerRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]mining.WorkerRecord, len(m.workers))
	copy(out, m.workers)
	return out, nil
}

func (m *Memory) ListAggregatesByDate(_ context.Context) ([]mining.AggregateRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]mining.AggregateRecord, len(m.aggregates))
	copy(out, m.aggregates)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		if out[i].Month != out[j].Month {
			return out[i].Month < out[j].Month
		}
		return out[i].Day < out[j].Day
	})
	return out, nil
}
