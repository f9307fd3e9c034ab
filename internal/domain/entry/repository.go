package entry

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-service/internal/domain/shared"
)

// Repository defines manual cash entry persistence operations
type Repository interface {
	Create(ctx context.Context, e *ManualCashEntry) error
	GetByID(ctx context.Context, id uuid.UUID) (*ManualCashEntry, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)

	// FindByDateRange returns entries whose entry date falls in
	// [start, end] inclusive, ordered by entry date ascending.
	FindByDateRange(ctx context.Context, start, end shared.Date) ([]*ManualCashEntry, error)

	// SumByTypeInRange returns the sum of amounts of the given type with an
	// entry date in [start, end] inclusive. Zero when no entries match.
	SumByTypeInRange(ctx context.Context, entryType Type, start, end shared.Date) (decimal.Decimal, error)
}

// ErrEntryNotFound indicates a missing manual cash entry
type ErrEntryNotFound struct {
	ID uuid.UUID
}

func (e ErrEntryNotFound) Error() string {
	return "manual cash entry not found: " + e.ID.String()
}

// Is matches any ErrEntryNotFound when the target carries a nil ID
func (e ErrEntryNotFound) Is(target error) bool {
	t, ok := target.(ErrEntryNotFound)
	if !ok {
		return false
	}
	if t.ID == uuid.Nil {
		return true
	}
	return e.ID == t.ID
}
