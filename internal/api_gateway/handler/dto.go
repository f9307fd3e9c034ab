package handler

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cashflow-service/internal/domain/cashflow"
	"github.com/cashflow-service/internal/domain/entry"
	"github.com/cashflow-service/internal/domain/shared"
)

// CreateManualEntryRequest represents a request to record a manual cash entry
type CreateManualEntryRequest struct {
	EntryDate          shared.Date     `json:"entry_date" binding:"required"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	Type               string          `json:"type" binding:"required,oneof=CREDIT DEBIT"`
	Description        string          `json:"description" binding:"required"`
	ProjectID          *uuid.UUID      `json:"project_id"`
	CostCenterID       *uuid.UUID      `json:"cost_center_id"`
	DocumentReferences []string        `json:"document_references"`
}

// ManualEntryResponse represents a manual cash entry in API responses
type ManualEntryResponse struct {
	ID                 string          `json:"id"`
	EntryDate          shared.Date     `json:"entry_date"`
	Amount             decimal.Decimal `json:"amount"`
	Type               string          `json:"type"`
	Description        string          `json:"description"`
	ProjectID          string          `json:"project_id,omitempty"`
	CostCenterID       string          `json:"cost_center_id,omitempty"`
	DocumentReferences []string        `json:"document_references,omitempty"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
}

// CurrentBalanceResponse represents the computed balance as of yesterday
type CurrentBalanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// ReportListResponse represents a listing of archived reports
type ReportListResponse struct {
	Reports []cashflow.ArchivedReportSummary `json:"reports"`
}

// mapEntryToResponse maps a manual cash entry to its response DTO
func mapEntryToResponse(e *entry.ManualCashEntry) ManualEntryResponse {
	resp := ManualEntryResponse{
		ID:                 e.ID.String(),
		EntryDate:          e.EntryDate,
		Amount:             e.Amount,
		Type:               string(e.Type),
		Description:        e.Description,
		DocumentReferences: e.DocumentReferences,
		CreatedAt:          e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          e.UpdatedAt.Format(time.RFC3339),
	}
	if e.ProjectID != nil {
		resp.ProjectID = e.ProjectID.String()
	}
	if e.CostCenterID != nil {
		resp.CostCenterID = e.CostCenterID.String()
	}
	return resp
}
