package upstream

import (
	"context"

	"github.com/cashflow-service/internal/domain/shared"
)

// PayableGateway is the read-only contract of the accounts payable service.
type PayableGateway interface {
	// FetchPaidByPaymentDate returns payables paid with a payment date in
	// [start, end] inclusive.
	FetchPaidByPaymentDate(ctx context.Context, start, end shared.Date) ([]PayableSummary, error)

	// FetchPendingByDueDate returns non-finalized payables with a due date
	// in [start, end] inclusive.
	FetchPendingByDueDate(ctx context.Context, start, end shared.Date) ([]PayableSummary, error)
}

// ReceivableGateway is the read-only contract of the accounts receivable service.
type ReceivableGateway interface {
	// FetchReceivedByReceivedDate returns receivables collected with a
	// received date in [start, end] inclusive.
	FetchReceivedByReceivedDate(ctx context.Context, start, end shared.Date) ([]ReceivableSummary, error)

	// FetchPendingByDueDate returns non-finalized receivables with a due
	// date in [start, end] inclusive.
	FetchPendingByDueDate(ctx context.Context, start, end shared.Date) ([]ReceivableSummary, error)
}
