package entry

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashflow-service/internal/domain/shared"
)

func TestNewManualCashEntry(t *testing.T) {
	entryDate := shared.NewDate(2024, time.May, 10)

	t.Run("Success", func(t *testing.T) {
		projectID := uuid.New()
		e, err := NewManualCashEntry(
			entryDate,
			decimal.RequireFromString("200.00"),
			TypeCredit,
			"Office equipment sale",
			&projectID,
			nil,
			[]string{"DOC-001", "DOC-002"},
		)
		require.NoError(t, err)
		require.NotNil(t, e)

		assert.NotEqual(t, uuid.Nil, e.ID)
		assert.Equal(t, entryDate, e.EntryDate)
		assert.True(t, e.Amount.Equal(decimal.RequireFromString("200.00")))
		assert.Equal(t, TypeCredit, e.Type)
		assert.Equal(t, "Office equipment sale", e.Description)
		assert.Equal(t, &projectID, e.ProjectID)
		assert.Nil(t, e.CostCenterID)
		assert.Equal(t, []string{"DOC-001", "DOC-002"}, e.DocumentReferences)
		assert.False(t, e.CreatedAt.IsZero())
	})

	t.Run("TrimsDescription", func(t *testing.T) {
		e, err := NewManualCashEntry(entryDate, decimal.NewFromInt(10), TypeDebit, "  rent  ", nil, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "rent", e.Description)
	})

	t.Run("ZeroAmount", func(t *testing.T) {
		_, err := NewManualCashEntry(entryDate, decimal.Zero, TypeCredit, "x", nil, nil, nil)
		assert.ErrorIs(t, err, ErrNonPositiveAmount)
	})

	t.Run("NegativeAmount", func(t *testing.T) {
		_, err := NewManualCashEntry(entryDate, decimal.NewFromInt(-5), TypeDebit, "x", nil, nil, nil)
		assert.ErrorIs(t, err, ErrNonPositiveAmount)
	})

	t.Run("BlankDescription", func(t *testing.T) {
		_, err := NewManualCashEntry(entryDate, decimal.NewFromInt(5), TypeCredit, "   ", nil, nil, nil)
		assert.ErrorIs(t, err, ErrBlankDescription)
	})

	t.Run("DescriptionTooLong", func(t *testing.T) {
		long := strings.Repeat("a", MaxDescriptionLength+1)
		_, err := NewManualCashEntry(entryDate, decimal.NewFromInt(5), TypeCredit, long, nil, nil, nil)
		assert.ErrorIs(t, err, ErrDescriptionTooLong)
	})

	t.Run("InvalidType", func(t *testing.T) {
		_, err := NewManualCashEntry(entryDate, decimal.NewFromInt(5), Type("TRANSFER"), "x", nil, nil, nil)
		assert.ErrorIs(t, err, ErrInvalidType)
	})

	t.Run("MissingEntryDate", func(t *testing.T) {
		_, err := NewManualCashEntry(shared.Date{}, decimal.NewFromInt(5), TypeCredit, "x", nil, nil, nil)
		assert.ErrorIs(t, err, ErrMissingEntryDate)
	})
}

func TestErrEntryNotFound_Is(t *testing.T) {
	id := uuid.New()
	err := ErrEntryNotFound{ID: id}

	assert.ErrorIs(t, err, ErrEntryNotFound{})
	assert.ErrorIs(t, err, ErrEntryNotFound{ID: id})
	assert.NotErrorIs(t, err, ErrEntryNotFound{ID: uuid.New()})
}
