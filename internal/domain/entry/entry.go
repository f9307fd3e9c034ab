package entry

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-service/internal/domain/shared"
)

// MaxDescriptionLength bounds the free-text description.
const MaxDescriptionLength = 300

// Common errors
var (
	ErrNonPositiveAmount  = errors.New("amount must be strictly positive")
	ErrBlankDescription   = errors.New("description cannot be blank")
	ErrDescriptionTooLong = errors.New("description exceeds maximum length")
	ErrInvalidType        = errors.New("entry type must be CREDIT or DEBIT")
	ErrMissingEntryDate   = errors.New("entry date is required")
)

// Type classifies a manual cash entry as an inflow or an outflow.
type Type string

const (
	TypeCredit Type = "CREDIT" // cash inflow
	TypeDebit  Type = "DEBIT"  // cash outflow
)

// Valid reports whether t is a known entry type.
func (t Type) Valid() bool {
	return t == TypeCredit || t == TypeDebit
}

// ManualCashEntry is a cash movement recorded directly in this system, not
// derived from a payable or receivable. Entries are immutable once created;
// the only write operations are create and delete.
type ManualCashEntry struct {
	ID                 uuid.UUID       `json:"id"`
	EntryDate          shared.Date     `json:"entry_date"`
	Amount             decimal.Decimal `json:"amount"`
	Type               Type            `json:"type"`
	Description        string          `json:"description"`
	ProjectID          *uuid.UUID      `json:"project_id,omitempty"`
	CostCenterID       *uuid.UUID      `json:"cost_center_id,omitempty"`
	DocumentReferences []string        `json:"document_references,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// NewManualCashEntry creates a new entry with the given attributes,
// enforcing the write-time invariants: strictly positive amount, non-blank
// bounded description, known type, and a concrete entry date.
func NewManualCashEntry(
	entryDate shared.Date,
	amount decimal.Decimal,
	entryType Type,
	description string,
	projectID, costCenterID *uuid.UUID,
	documentReferences []string,
) (*ManualCashEntry, error) {
	if entryDate.IsZero() {
		return nil, ErrMissingEntryDate
	}
	if !amount.IsPositive() {
		return nil, ErrNonPositiveAmount
	}
	if !entryType.Valid() {
		return nil, ErrInvalidType
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrBlankDescription
	}
	if len([]rune(description)) > MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	now := time.Now()
	return &ManualCashEntry{
		ID:                 uuid.New(),
		EntryDate:          entryDate,
		Amount:             amount,
		Type:               entryType,
		Description:        description,
		ProjectID:          projectID,
		CostCenterID:       costCenterID,
		DocumentReferences: documentReferences,
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}
