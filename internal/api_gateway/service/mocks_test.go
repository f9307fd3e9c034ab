package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/cashflow-service/internal/domain/cashflow"
	"github.com/cashflow-service/internal/domain/entry"
	"github.com/cashflow-service/internal/domain/shared"
	"github.com/cashflow-service/internal/domain/upstream"
)

// MockEntryRepository mocks the entry.Repository interface
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) Create(ctx context.Context, e *entry.ManualCashEntry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEntryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entry.ManualCashEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entry.ManualCashEntry), args.Error(1)
}

func (m *MockEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEntryRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockEntryRepository) FindByDateRange(ctx context.Context, start, end shared.Date) ([]*entry.ManualCashEntry, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entry.ManualCashEntry), args.Error(1)
}

func (m *MockEntryRepository) SumByTypeInRange(ctx context.Context, entryType entry.Type, start, end shared.Date) (decimal.Decimal, error) {
	args := m.Called(ctx, entryType, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockPayableGateway mocks the upstream.PayableGateway interface
type MockPayableGateway struct {
	mock.Mock
}

func (m *MockPayableGateway) FetchPaidByPaymentDate(ctx context.Context, start, end shared.Date) ([]upstream.PayableSummary, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]upstream.PayableSummary), args.Error(1)
}

func (m *MockPayableGateway) FetchPendingByDueDate(ctx context.Context, start, end shared.Date) ([]upstream.PayableSummary, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]upstream.PayableSummary), args.Error(1)
}

// MockReceivableGateway mocks the upstream.ReceivableGateway interface
type MockReceivableGateway struct {
	mock.Mock
}

func (m *MockReceivableGateway) FetchReceivedByReceivedDate(ctx context.Context, start, end shared.Date) ([]upstream.ReceivableSummary, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]upstream.ReceivableSummary), args.Error(1)
}

func (m *MockReceivableGateway) FetchPendingByDueDate(ctx context.Context, start, end shared.Date) ([]upstream.ReceivableSummary, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]upstream.ReceivableSummary), args.Error(1)
}

// MockArchiveRepository mocks the cashflow.ArchiveRepository interface
type MockArchiveRepository struct {
	mock.Mock
}

func (m *MockArchiveRepository) Save(ctx context.Context, report *cashflow.ArchivedReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockArchiveRepository) ListRecent(ctx context.Context, limit int) ([]cashflow.ArchivedReportSummary, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]cashflow.ArchivedReportSummary), args.Error(1)
}

// MockReportArchiver mocks the ReportArchiver interface
type MockReportArchiver struct {
	mock.Mock
}

func (m *MockReportArchiver) Submit(report *cashflow.ArchivedReport) {
	m.Called(report)
}

// MockMessagePublisher mocks the producers.MessagePublisher interface
type MockMessagePublisher struct {
	mock.Mock
}

func (m *MockMessagePublisher) Publish(ctx context.Context, key string, value interface{}) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
