package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-service/internal/domain/cashflow"
	"github.com/cashflow-service/internal/domain/entry"
	"github.com/cashflow-service/internal/domain/shared"
)

// CreateEntryParams carries the attributes of a new manual cash entry.
type CreateEntryParams struct {
	EntryDate          shared.Date
	Amount             decimal.Decimal
	Type               entry.Type
	Description        string
	ProjectID          *uuid.UUID
	CostCenterID       *uuid.UUID
	DocumentReferences []string
}

// EntryService defines the interface for manual cash entry operations
type EntryService interface {
	// CreateEntry validates and persists a new manual cash entry.
	// Returns the domain validation errors for rejected attributes
	CreateEntry(ctx context.Context, params CreateEntryParams) (*entry.ManualCashEntry, error)

	// GetEntryByID retrieves a manual cash entry by its ID
	// Returns ErrEntryNotFound if the entry doesn't exist
	GetEntryByID(ctx context.Context, id uuid.UUID) (*entry.ManualCashEntry, error)

	// DeleteEntry removes a manual cash entry by its ID
	// Returns ErrEntryNotFound if the entry doesn't exist
	DeleteEntry(ctx context.Context, id uuid.UUID) error
}

// CashFlowService defines the interface for cash flow reporting operations
type CashFlowService interface {
	// GetStatement builds a historical cash flow statement for [start, end].
	// Returns ErrInvalidDateRange when start is after end
	GetStatement(ctx context.Context, start, end shared.Date, openingBalance decimal.Decimal) (*cashflow.Statement, error)

	// GetCurrentBalance computes the balance as of yesterday from a known
	// opening position. When openingBalanceDate is after yesterday the
	// opening balance is returned unchanged
	GetCurrentBalance(ctx context.Context, openingBalanceDate shared.Date, openingBalance decimal.Decimal) (decimal.Decimal, error)

	// GetForecast projects the balance from today over the next daysAhead
	// days using pending obligations. Returns ErrInvalidDaysAhead when
	// daysAhead is not positive
	GetForecast(ctx context.Context, daysAhead int, currentBalance decimal.Decimal) (*cashflow.Forecast, error)

	// ListArchivedReports returns metadata for recently generated reports,
	// newest first
	ListArchivedReports(ctx context.Context, limit int) ([]cashflow.ArchivedReportSummary, error)
}

// ReportArchiver accepts generated reports for background persistence.
type ReportArchiver interface {
	Submit(report *cashflow.ArchivedReport)
}
