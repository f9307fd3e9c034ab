// Package cashflow contains the aggregates produced by the statement and
// forecast engines. All of them are ephemeral: built for a single response
// from whatever the sources returned at invocation time.
package cashflow

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/cashflow-service/internal/domain/shared"
)

// Validation errors for report requests
var (
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrInvalidDaysAhead = errors.New("days ahead must be positive")
)

// Category tags a cash flow line item with its source.
type Category string

const (
	CategoryReceivable   Category = "RECEIVABLE"
	CategoryPayable      Category = "PAYABLE"
	CategoryManualCredit Category = "MANUAL_CREDIT"
	CategoryManualDebit  Category = "MANUAL_DEBIT"
)

// Item is a normalized cash flow line item. Reference points back to the
// originating payable, receivable or manual entry when known.
type Item struct {
	Date        shared.Date     `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Category    Category        `json:"category"`
	Reference   string          `json:"reference,omitempty"`
}

// Statement is a historical, closed-period accounting of actual cash
// movements. Invariants: ClosingBalance = OpeningBalance + TotalInflows -
// TotalOutflows, and the totals equal the sums of their item lists.
type Statement struct {
	StartDate      shared.Date     `json:"start_date"`
	EndDate        shared.Date     `json:"end_date"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
	TotalInflows   decimal.Decimal `json:"total_inflows"`
	TotalOutflows  decimal.Decimal `json:"total_outflows"`
	NetCashFlow    decimal.Decimal `json:"net_cash_flow"`
	ClosingBalance decimal.Decimal `json:"closing_balance"`
	InflowItems    []Item          `json:"inflow_items"`
	OutflowItems   []Item          `json:"outflow_items"`
}

// DailyBalance is one day of a forecast projection.
type DailyBalance struct {
	Date    shared.Date     `json:"date"`
	Balance decimal.Decimal `json:"balance"`
}

// Forecast is a forward-looking projection over pending obligations.
// DailyProjectedBalance is ordered by date, one element per day in
// [ForecastStartDate, ForecastStartDate+daysAhead]; each day's balance is the
// previous day's plus that day's net pending flow.
type Forecast struct {
	ForecastStartDate     shared.Date     `json:"forecast_start_date"`
	StartingBalance       decimal.Decimal `json:"starting_balance"`
	DailyProjectedBalance []DailyBalance  `json:"daily_projected_balance"`
}
