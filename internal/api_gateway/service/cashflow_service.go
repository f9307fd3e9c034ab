package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/cashflow-service/internal/domain/cashflow"
	"github.com/cashflow-service/internal/domain/entry"
	"github.com/cashflow-service/internal/domain/shared"
	"github.com/cashflow-service/internal/domain/upstream"
)

const defaultReportListLimit = 20

// CashFlowServiceImpl implements the CashFlowService interface. The payable
// and receivable services are best-effort sources: when one is unreachable
// its side of the report is computed from no activity and the failure is
// logged, never surfaced. The local entry store is authoritative and its
// failures do propagate.
type CashFlowServiceImpl struct {
	entryRepo         entry.Repository
	payableGateway    upstream.PayableGateway
	receivableGateway upstream.ReceivableGateway
	archiveRepo       cashflow.ArchiveRepository
	archiver          ReportArchiver
	logger            *slog.Logger

	// Injectable clock, "today" is derived from it
	now func() time.Time
}

// NewCashFlowService creates a new cash flow reporting service
func NewCashFlowService(
	logger *slog.Logger,
	entryRepo entry.Repository,
	payableGateway upstream.PayableGateway,
	receivableGateway upstream.ReceivableGateway,
	archiveRepo cashflow.ArchiveRepository,
	archiver ReportArchiver,
) CashFlowService {
	return &CashFlowServiceImpl{
		entryRepo:         entryRepo,
		payableGateway:    payableGateway,
		receivableGateway: receivableGateway,
		archiveRepo:       archiveRepo,
		archiver:          archiver,
		logger:            logger,
		now:               time.Now,
	}
}

// GetStatement builds a historical statement for [start, end] and submits a
// snapshot of it to the archive.
func (s *CashFlowServiceImpl) GetStatement(ctx context.Context, start, end shared.Date, openingBalance decimal.Decimal) (*cashflow.Statement, error) {
	statement, err := s.buildStatement(ctx, start, end, openingBalance)
	if err != nil {
		return nil, err
	}

	s.archiver.Submit(cashflow.NewStatementArchive(statement))
	return statement, nil
}

func (s *CashFlowServiceImpl) buildStatement(ctx context.Context, start, end shared.Date, openingBalance decimal.Decimal) (*cashflow.Statement, error) {
	if start.After(end) {
		return nil, cashflow.ErrInvalidDateRange
	}

	var (
		paidPayables        []upstream.PayableSummary
		receivedReceivables []upstream.ReceivableSummary
		manualEntries       []*entry.ManualCashEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summaries, err := s.payableGateway.FetchPaidByPaymentDate(gctx, start, end)
		if err != nil {
			s.logger.Warn("Accounts payable service unavailable, statement omits payables", "error", err)
			return nil
		}
		paidPayables = summaries
		return nil
	})
	g.Go(func() error {
		summaries, err := s.receivableGateway.FetchReceivedByReceivedDate(gctx, start, end)
		if err != nil {
			s.logger.Warn("Accounts receivable service unavailable, statement omits receivables", "error", err)
			return nil
		}
		receivedReceivables = summaries
		return nil
	})
	g.Go(func() error {
		entries, err := s.entryRepo.FindByDateRange(gctx, start, end)
		if err != nil {
			return err
		}
		manualEntries = entries
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	inflowItems := []cashflow.Item{}
	outflowItems := []cashflow.Item{}

	// Upstreams may return records settled outside the requested window;
	// only actual settlement dates inside it count.
	for _, r := range receivedReceivables {
		if r.ReceivedDate.IsZero() || !r.ReceivedDate.InRange(start, end) {
			continue
		}
		inflowItems = append(inflowItems, cashflow.Item{
			Date:        r.ReceivedDate,
			Description: "Receivable ID: " + r.ID,
			Amount:      amountOrZero(r.AmountReceived),
			Category:    cashflow.CategoryReceivable,
			Reference:   r.ID,
		})
	}
	for _, p := range paidPayables {
		if p.PaymentDate.IsZero() || !p.PaymentDate.InRange(start, end) {
			continue
		}
		outflowItems = append(outflowItems, cashflow.Item{
			Date:        p.PaymentDate,
			Description: "Payable ID: " + p.ID,
			Amount:      amountOrZero(p.AmountPaid),
			Category:    cashflow.CategoryPayable,
			Reference:   p.ID,
		})
	}
	for _, m := range manualEntries {
		item := cashflow.Item{
			Date:        m.EntryDate,
			Description: m.Description,
			Amount:      m.Amount,
			Reference:   m.ID.String(),
		}
		if m.Type == entry.TypeCredit {
			item.Category = cashflow.CategoryManualCredit
			inflowItems = append(inflowItems, item)
		} else {
			item.Category = cashflow.CategoryManualDebit
			outflowItems = append(outflowItems, item)
		}
	}

	sortItemsByDate(inflowItems)
	sortItemsByDate(outflowItems)

	totalInflows := sumItems(inflowItems)
	totalOutflows := sumItems(outflowItems)
	netCashFlow := totalInflows.Sub(totalOutflows)
	closingBalance := openingBalance.Add(netCashFlow)

	s.logger.Info("Statement calculated",
		"start", start,
		"end", end,
		"total_inflows", totalInflows.String(),
		"total_outflows", totalOutflows.String(),
		"closing_balance", closingBalance.String(),
	)

	return &cashflow.Statement{
		StartDate:      start,
		EndDate:        end,
		OpeningBalance: openingBalance,
		TotalInflows:   totalInflows,
		TotalOutflows:  totalOutflows,
		NetCashFlow:    netCashFlow,
		ClosingBalance: closingBalance,
		InflowItems:    inflowItems,
		OutflowItems:   outflowItems,
	}, nil
}

// GetCurrentBalance rolls an opening position forward to yesterday. The
// internal statement is not archived; only explicitly requested reports are.
func (s *CashFlowServiceImpl) GetCurrentBalance(ctx context.Context, openingBalanceDate shared.Date, openingBalance decimal.Decimal) (decimal.Decimal, error) {
	yesterday := shared.DateOf(s.now()).AddDays(-1)
	if openingBalanceDate.After(yesterday) {
		return openingBalance, nil
	}

	statement, err := s.buildStatement(ctx, openingBalanceDate, yesterday, openingBalance)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return statement.ClosingBalance, nil
}

// GetForecast projects the balance over [today, today+daysAhead] from the
// remaining amounts of pending payables and receivables, accumulated on due
// date and rolled forward cumulatively. Manual entries record actuals only
// and do not enter the projection.
func (s *CashFlowServiceImpl) GetForecast(ctx context.Context, daysAhead int, currentBalance decimal.Decimal) (*cashflow.Forecast, error) {
	if daysAhead <= 0 {
		return nil, cashflow.ErrInvalidDaysAhead
	}

	today := shared.DateOf(s.now())
	forecastEnd := today.AddDays(daysAhead)

	var (
		pendingPayables    []upstream.PayableSummary
		pendingReceivables []upstream.ReceivableSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summaries, err := s.payableGateway.FetchPendingByDueDate(gctx, today, forecastEnd)
		if err != nil {
			s.logger.Warn("Accounts payable service unavailable, forecast omits payables", "error", err)
			return nil
		}
		pendingPayables = summaries
		return nil
	})
	g.Go(func() error {
		summaries, err := s.receivableGateway.FetchPendingByDueDate(gctx, today, forecastEnd)
		if err != nil {
			s.logger.Warn("Accounts receivable service unavailable, forecast omits receivables", "error", err)
			return nil
		}
		pendingReceivables = summaries
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dailyNetFlow := make(map[shared.Date]decimal.Decimal)
	for _, r := range pendingReceivables {
		remaining := r.Remaining()
		if remaining.IsPositive() && !r.DueDate.IsZero() {
			dailyNetFlow[r.DueDate] = dailyNetFlow[r.DueDate].Add(remaining)
		}
	}
	for _, p := range pendingPayables {
		remaining := p.Remaining()
		if remaining.IsPositive() && !p.DueDate.IsZero() {
			dailyNetFlow[p.DueDate] = dailyNetFlow[p.DueDate].Sub(remaining)
		}
	}

	daily := make([]cashflow.DailyBalance, 0, daysAhead+1)
	runningBalance := currentBalance
	for d := today; !d.After(forecastEnd); d = d.AddDays(1) {
		runningBalance = runningBalance.Add(dailyNetFlow[d])
		daily = append(daily, cashflow.DailyBalance{Date: d, Balance: runningBalance})
	}

	forecast := &cashflow.Forecast{
		ForecastStartDate:     today,
		StartingBalance:       currentBalance,
		DailyProjectedBalance: daily,
	}

	s.logger.Info("Forecast generated",
		"start", today,
		"end", forecastEnd,
		"starting_balance", currentBalance.String(),
	)

	s.archiver.Submit(cashflow.NewForecastArchive(forecast))
	return forecast, nil
}

// ListArchivedReports returns metadata for recently archived reports
func (s *CashFlowServiceImpl) ListArchivedReports(ctx context.Context, limit int) ([]cashflow.ArchivedReportSummary, error) {
	if limit <= 0 {
		limit = defaultReportListLimit
	}
	return s.archiveRepo.ListRecent(ctx, limit)
}

func amountOrZero(n decimal.NullDecimal) decimal.Decimal {
	if !n.Valid {
		return decimal.Decimal{}
	}
	return n.Decimal
}

func sortItemsByDate(items []cashflow.Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.Before(items[j].Date)
	})
}

func sumItems(items []cashflow.Item) decimal.Decimal {
	total := decimal.Decimal{}
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}
