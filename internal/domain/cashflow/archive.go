package cashflow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/cashflow-service/internal/domain/shared"
)

// ReportKind distinguishes archived report payloads.
type ReportKind string

const (
	ReportKindStatement ReportKind = "STATEMENT"
	ReportKindForecast  ReportKind = "FORECAST"
)

// ArchivedReport is a snapshot of a generated report kept for audit. Exactly
// one of Statement or Forecast is set, matching Kind.
type ArchivedReport struct {
	ID          uuid.UUID
	Kind        ReportKind
	GeneratedAt time.Time
	PeriodStart shared.Date
	PeriodEnd   shared.Date
	Statement   *Statement
	Forecast    *Forecast
}

// NewStatementArchive wraps a statement for archival.
func NewStatementArchive(s *Statement) *ArchivedReport {
	return &ArchivedReport{
		ID:          uuid.New(),
		Kind:        ReportKindStatement,
		GeneratedAt: time.Now(),
		PeriodStart: s.StartDate,
		PeriodEnd:   s.EndDate,
		Statement:   s,
	}
}

// NewForecastArchive wraps a forecast for archival.
func NewForecastArchive(f *Forecast) *ArchivedReport {
	end := f.ForecastStartDate
	if n := len(f.DailyProjectedBalance); n > 0 {
		end = f.DailyProjectedBalance[n-1].Date
	}
	return &ArchivedReport{
		ID:          uuid.New(),
		Kind:        ReportKindForecast,
		GeneratedAt: time.Now(),
		PeriodStart: f.ForecastStartDate,
		PeriodEnd:   end,
		Forecast:    f,
	}
}

// ArchivedReportSummary is the metadata view returned by archive listings.
type ArchivedReportSummary struct {
	ID          uuid.UUID   `json:"id"`
	Kind        ReportKind  `json:"kind"`
	GeneratedAt time.Time   `json:"generated_at"`
	PeriodStart shared.Date `json:"period_start"`
	PeriodEnd   shared.Date `json:"period_end"`
}

// ArchiveRepository persists report snapshots
type ArchiveRepository interface {
	Save(ctx context.Context, report *ArchivedReport) error

	// ListRecent returns metadata for the most recently generated reports,
	// newest first.
	ListRecent(ctx context.Context, limit int) ([]ArchivedReportSummary, error)
}
