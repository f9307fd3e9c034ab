// Package upstream models the read-only projections served by the accounts
// payable and accounts receivable services. These records are owned by those
// systems; each gateway call returns a fresh snapshot and nothing here is
// ever persisted locally.
package upstream

import (
	"github.com/shopspring/decimal"

	"github.com/cashflow-service/internal/domain/shared"
)

// PayableStatus is the lifecycle state of a payable as reported by the
// accounts payable service.
type PayableStatus string

const (
	PayableStatusPending       PayableStatus = "PENDING"
	PayableStatusPaid          PayableStatus = "PAID"
	PayableStatusPartiallyPaid PayableStatus = "PARTIALLY_PAID"
	PayableStatusOverdue       PayableStatus = "OVERDUE"
	PayableStatusCanceled      PayableStatus = "CANCELED"
	PayableStatusInNegotiation PayableStatus = "IN_NEGOTIATION"
)

// ReceivableStatus is the lifecycle state of a receivable as reported by the
// accounts receivable service.
type ReceivableStatus string

const (
	ReceivableStatusPending           ReceivableStatus = "PENDING"
	ReceivableStatusReceived          ReceivableStatus = "RECEIVED"
	ReceivableStatusPartiallyReceived ReceivableStatus = "PARTIALLY_RECEIVED"
	ReceivableStatusOverdue           ReceivableStatus = "OVERDUE"
	ReceivableStatusInDispute         ReceivableStatus = "IN_DISPUTE"
	ReceivableStatusWrittenOff        ReceivableStatus = "WRITTEN_OFF"
	ReceivableStatusCanceled          ReceivableStatus = "CANCELED"
)

// PayableSummary is a snapshot of a payable. PaymentDate is only meaningful
// in per-transaction ("actual") responses; AmountPaid may be absent.
type PayableSummary struct {
	ID          string              `json:"id"`
	DueDate     shared.Date         `json:"due_date"`
	AmountDue   decimal.Decimal     `json:"amount_due"`
	AmountPaid  decimal.NullDecimal `json:"amount_paid"`
	Status      PayableStatus       `json:"status"`
	PaymentDate shared.Date         `json:"payment_date"`
}

// Remaining returns the unpaid portion of the payable, treating an absent
// AmountPaid as zero.
func (p PayableSummary) Remaining() decimal.Decimal {
	if !p.AmountPaid.Valid {
		return p.AmountDue
	}
	return p.AmountDue.Sub(p.AmountPaid.Decimal)
}

// ReceivableSummary is a snapshot of a receivable. ReceivedDate is only
// meaningful in per-transaction ("actual") responses; AmountReceived may be
// absent.
type ReceivableSummary struct {
	ID             string              `json:"id"`
	DueDate        shared.Date         `json:"due_date"`
	AmountExpected decimal.Decimal     `json:"amount_expected"`
	AmountReceived decimal.NullDecimal `json:"amount_received"`
	Status         ReceivableStatus    `json:"status"`
	ReceivedDate   shared.Date         `json:"received_date"`
}

// Remaining returns the uncollected portion of the receivable, treating an
// absent AmountReceived as zero.
func (r ReceivableSummary) Remaining() decimal.Decimal {
	if !r.AmountReceived.Valid {
		return r.AmountExpected
	}
	return r.AmountExpected.Sub(r.AmountReceived.Decimal)
}
