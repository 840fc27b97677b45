package mining

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateCSV(t *testing.T) {
	records := []AggregateRecord{
		{ID: 1, Year: 2025, Month: 1, Day: 4, Gold: 1, Silver: 2, Diamond: decimal.NewFromFloat(0.5)},
		{ID: 2, Year: 2025, Month: 1, Day: 5, Gold: 3, Silver: 4, Diamond: decimal.NewFromFloat(1.25)},
	}

	out, err := AggregateCSV(records)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3, "header plus one row per record")
	assert.Equal(t, []string{"ID", "Év", "Hónap", "Nap", "Aranytermelés", "Ezüsttermelés", "Gyémánttermelés"}, rows[0])
	assert.Equal(t, []string{"1", "2025", "1", "4", "1", "2", "0.5"}, rows[1])
	assert.Equal(t, []string{"2", "2025", "1", "5", "3", "4", "1.25"}, rows[2])
}

func TestAggregateCSV_Empty(t *testing.T) {
	_, err := AggregateCSV(nil)
	assert.ErrorIs(t, err, ErrNoData, "empty table must not yield a header-only file")
}

func TestWorkerCSV(t *testing.T) {
	records := []WorkerRecord{
		{
			ID:      7,
			Name:    "Kuka",
			Date:    time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC),
			Gold:    1,
			Silver:  2,
			Diamond: decimal.NewFromFloat(0.5),
		},
	}

	out, err := WorkerCSV(records)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"ID", "Name", "Date", "Gold", "Silver", "Diamond"}, rows[0])
	assert.Equal(t, []string{"7", "Kuka", "2025-01-04", "1", "2", "0.5"}, rows[1])
}

func TestWorkerCSV_Empty(t *testing.T) {
	_, err := WorkerCSV([]WorkerRecord{})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestAggregateCSV_RowCountMatchesInput(t *testing.T) {
	var records []AggregateRecord
	for i := 1; i <= 17; i++ {
		records = append(records, AggregateRecord{
			ID: int64(i), Year: 2025, Month: 1, Day: i,
			Gold: int64(i), Silver: int64(i), Diamond: decimal.NewFromInt(int64(i)),
		})
	}

	out, err := AggregateCSV(records)
	require.NoError(t, err)

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, len(records)+1)

	// Insertion order preserved
	for i, row := range rows[1:] {
		assert.Equal(t, strconv.FormatInt(records[i].ID, 10), row[0], "row %d out of order", i)
	}
}
