package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cashflow-service/internal/api_gateway/service"
	"github.com/cashflow-service/internal/domain/entry"
	"github.com/cashflow-service/internal/domain/shared"
)

type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) CreateEntry(ctx context.Context, params service.CreateEntryParams) (*entry.ManualCashEntry, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entry.ManualCashEntry), args.Error(1)
}

func (m *MockEntryService) GetEntryByID(ctx context.Context, id uuid.UUID) (*entry.ManualCashEntry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entry.ManualCashEntry), args.Error(1)
}

func (m *MockEntryService) DeleteEntry(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	return r
}

func decodeEntryResponse(t *testing.T, body []byte) ManualEntryResponse {
	t.Helper()

	var topLevelResponse Response
	require.NoError(t, json.Unmarshal(body, &topLevelResponse))
	require.NotNil(t, topLevelResponse.Data)

	dataBytes, err := json.Marshal(topLevelResponse.Data)
	require.NoError(t, err)

	var entryResponse ManualEntryResponse
	require.NoError(t, json.Unmarshal(dataBytes, &entryResponse))
	return entryResponse
}

func TestEntryHandler_Create(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockEntryService)
		handler := NewEntryHandler(logger, mockService)

		created, err := entry.NewManualCashEntry(
			shared.NewDate(2024, 5, 10), decimal.NewFromInt(200), entry.TypeCredit, "Capital injection", nil, nil, nil)
		require.NoError(t, err)

		mockService.On("CreateEntry", mock.Anything, mock.MatchedBy(func(params service.CreateEntryParams) bool {
			return params.EntryDate == shared.NewDate(2024, 5, 10) &&
				params.Type == entry.TypeCredit &&
				params.Description == "Capital injection"
		})).Return(created, nil)

		router := setupTestRouter()
		router.POST("/manual-entries", handler.Create)

		body := []byte(`{"entry_date":"2024-05-10","amount":"200.00","type":"CREDIT","description":"Capital injection"}`)
		req, _ := http.NewRequest(http.MethodPost, "/manual-entries", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		entryResponse := decodeEntryResponse(t, rr.Body.Bytes())
		assert.Equal(t, created.ID.String(), entryResponse.ID)
		assert.Equal(t, "CREDIT", entryResponse.Type)
		assert.Equal(t, shared.NewDate(2024, 5, 10), entryResponse.EntryDate)
		mockService.AssertExpectations(t)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		mockService := new(MockEntryService)
		handler := NewEntryHandler(logger, mockService)

		router := setupTestRouter()
		router.POST("/manual-entries", handler.Create)

		req, _ := http.NewRequest(http.MethodPost, "/manual-entries", bytes.NewBufferString(`{"entry_date":`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
	})

	t.Run("UnknownTypeRejected", func(t *testing.T) {
		mockService := new(MockEntryService)
		handler := NewEntryHandler(logger, mockService)

		router := setupTestRouter()
		router.POST("/manual-entries", handler.Create)

		body := []byte(`{"entry_date":"2024-05-10","amount":"200.00","type":"TRANSFER","description":"Capital injection"}`)
		req, _ := http.NewRequest(http.MethodPost, "/manual-entries", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
	})

	t.Run("DomainValidationFailure", func(t *testing.T) {
		mockService := new(MockEntryService)
		handler := NewEntryHandler(logger, mockService)

		mockService.On("CreateEntry", mock.Anything, mock.Anything).Return(nil, entry.ErrBlankDescription)

		router := setupTestRouter()
		router.POST("/manual-entries", handler.Create)

		body := []byte(`{"entry_date":"2024-05-10","amount":"200.00","type":"DEBIT","description":"   "}`)
		req, _ := http.NewRequest(http.MethodPost, "/manual-entries", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var topLevelResponse Response
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &topLevelResponse))
		require.NotNil(t, topLevelResponse.Error)
		assert.Equal(t, "BAD_REQUEST", topLevelResponse.Error.Code)
	})

	t.Run("ServiceError", func(t *testing.T) {
		mockService := new(MockEntryService)
		handler := NewEntryHandler(logger, mockService)

		mockService.On("CreateEntry", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

		router := setupTestRouter()
		router.POST("/manual-entries", handler.Create)

		body := []byte(`{"entry_date":"2024-05-10","amount":"200.00","type":"CREDIT","description":"Capital injection"}`)
		req, _ := http.NewRequest(http.MethodPost, "/manual-entries", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func TestEntryHandler_GetByID(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockEntryService)
		handler := NewEntryHandler(logger, mockService)

		stored, err := entry.NewManualCashEntry(
			shared.NewDate(2024, 5, 15), decimal.NewFromInt(50), entry.TypeDebit, "Office supplies", nil, nil, nil)
		require.NoError(t, err)

		mockService.On("GetEntryByID", mock.Anything, stored.ID).Return(stored, nil)

		router := setupTestRouter()
		router.GET("/manual-entries/:id", handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/manual-entries/"+stored.ID.String(), nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		entryResponse := decodeEntryResponse(t, rr.Body.Bytes())
		assert.Equal(t, stored.ID.String(), entryResponse.ID)
		assert.Equal(t, "DEBIT", entryResponse.Type)
	})

	t.Run("InvalidID", func(t *testing.T) {
		mockService := new(MockEntryService)
		handler := NewEntryHandler(logger, mockService)

		router := setupTestRouter()
		router.GET("/manual-entries/:id", handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/manual-entries/not-a-uuid", nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		mockService.AssertNotCalled(t, "GetEntryByID", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockEntryService)
		handler := NewEntryHandler(logger, mockService)

		id := uuid.New()
		mockService.On("GetEntryByID", mock.Anything, id).Return(nil, entry.ErrEntryNotFound{ID: id})

		router := setupTestRouter()
		router.GET("/manual-entries/:id", handler.GetByID)

		req, _ := http.NewRequest(http.MethodGet, "/manual-entries/"+id.String(), nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestEntryHandler_Delete(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	t.Run("Success", func(t *testing.T) {
		mockService := new(MockEntryService)
		handler := NewEntryHandler(logger, mockService)

		id := uuid.New()
		mockService.On("DeleteEntry", mock.Anything, id).Return(nil)

		router := setupTestRouter()
		router.DELETE("/manual-entries/:id", handler.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/manual-entries/"+id.String(), nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.Bytes())
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockEntryService)
		handler := NewEntryHandler(logger, mockService)

		id := uuid.New()
		mockService.On("DeleteEntry", mock.Anything, id).Return(entry.ErrEntryNotFound{ID: id})

		router := setupTestRouter()
		router.DELETE("/manual-entries/:id", handler.Delete)

		req, _ := http.NewRequest(http.MethodDelete, "/manual-entries/"+id.String(), nil)
		rr := httptest.NewRecorder()

		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
