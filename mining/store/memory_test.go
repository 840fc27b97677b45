package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minehall/production-ledger/mining"
	"github.com/minehall/production-ledger/mining/store"
)

func TestMemory_IDsCountPerTable(t *testing.T) {
	mem := store.NewMemory()
	ctx := context.Background()

	// An aggregate insert must not advance the worker table's ids
	agg, err := mem.InsertAggregate(ctx, mining.AggregateRecord{
		Year: 2025, Month: 1, Day: 4, Diamond: decimal.Zero,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), agg.ID)

	wrk, err := mem.InsertWorker(ctx, mining.WorkerRecord{
		Name: "Kuka", Date: time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), Diamond: decimal.Zero,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), wrk.ID, "worker ids start at 1 regardless of aggregate inserts")

	agg2, err := mem.InsertAggregate(ctx, mining.AggregateRecord{
		Year: 2025, Month: 1, Day: 5, Diamond: decimal.Zero,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), agg2.ID)
}
