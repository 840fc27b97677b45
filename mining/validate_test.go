package mining

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2025-01-04")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), date)
}

func TestParseDate_RejectsWrongLayout(t *testing.T) {
	// Day-first input against the fixed YYYY-MM-DD layout
	_, err := ParseDate("03-01-2025")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "datum", verr.Field)
}

func TestParseDate_RejectsImpossibleDate(t *testing.T) {
	_, err := ParseDate("2025-02-30")
	assert.Error(t, err)
}

func TestAggregateInput_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      AggregateInput
		wantErr string // failing field, empty means valid
	}{
		{
			name: "valid",
			in:   AggregateInput{Date: "2025-01-04", Gold: 1, Silver: 2, Diamond: decimal.NewFromFloat(0.5)},
		},
		{
			name: "zero quantities are allowed",
			in:   AggregateInput{Date: "2025-01-04"},
		},
		{
			name:    "negative gold",
			in:      AggregateInput{Date: "2025-01-04", Gold: -1, Silver: 2, Diamond: decimal.NewFromFloat(0.5)},
			wantErr: "gold",
		},
		{
			name:    "negative silver",
			in:      AggregateInput{Date: "2025-01-04", Gold: 1, Silver: -2, Diamond: decimal.NewFromFloat(0.5)},
			wantErr: "silver",
		},
		{
			name:    "negative diamond",
			in:      AggregateInput{Date: "2025-01-04", Gold: 1, Silver: 2, Diamond: decimal.NewFromFloat(-0.5)},
			wantErr: "diamond",
		},
		{
			name:    "bad date",
			in:      AggregateInput{Date: "not-a-date", Gold: 1, Silver: 2, Diamond: decimal.NewFromFloat(0.5)},
			wantErr: "datum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantErr, verr.Field)
		})
	}
}

func TestWorkerInput_Validate(t *testing.T) {
	valid := WorkerInput{Name: "Kuka", Date: "2025-01-04", Gold: 1, Silver: 2, Diamond: decimal.NewFromFloat(0.5)}
	_, err := valid.Validate()
	assert.NoError(t, err)

	blank := valid
	blank.Name = "   "
	_, err = blank.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	negative := valid
	negative.Diamond = decimal.NewFromFloat(-0.01)
	_, err = negative.Validate()
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), MsgPositiveValues)
}

func TestErrorHelpers(t *testing.T) {
	verr := &ValidationError{Field: "gold", Reason: MsgPositiveValues}
	assert.True(t, IsClientError(verr))
	assert.False(t, IsNotFound(verr))

	assert.True(t, IsNotFound(ErrNoData))
	assert.False(t, IsClientError(ErrNoData))
	assert.False(t, IsClientError(ErrStorage))
}
