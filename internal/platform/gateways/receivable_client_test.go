package gateways

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cashflow-service/internal/config"
	"github.com/cashflow-service/internal/domain/shared"
	"github.com/cashflow-service/internal/domain/upstream"
)

func newReceivableTestClient(serverURL string) *ReceivableClient {
	return NewReceivableClient(testLogger(), &config.UpstreamConfig{
		ReceivableURL:  serverURL,
		RequestTimeout: 0,
	})
}

func TestReceivableClient_FetchReceivedByReceivedDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/receivables/summary-by-date", r.URL.Path)
		assert.Equal(t, "2024-05-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-05-31", r.URL.Query().Get("endDate"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"id":"rec-1","due_date":"2024-05-12","amount_expected":"300.00","amount_received":"250.00","status":"PARTIALLY_RECEIVED","received_date":"2024-05-11"}
		]`))
	}))
	defer server.Close()

	client := newReceivableTestClient(server.URL)

	summaries, err := client.FetchReceivedByReceivedDate(context.Background(), shared.NewDate(2024, 5, 1), shared.NewDate(2024, 5, 31))

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "rec-1", summaries[0].ID)
	assert.Equal(t, shared.NewDate(2024, 5, 11), summaries[0].ReceivedDate)
	assert.Equal(t, upstream.ReceivableStatusPartiallyReceived, summaries[0].Status)
	assert.Equal(t, "50", summaries[0].Remaining().String())
}

func TestReceivableClient_FetchPendingByDueDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/receivables/pending-summary-by-due-date", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"rec-2","due_date":"2024-06-02","amount_expected":"300.00","amount_received":null,"status":"PENDING"}]`))
	}))
	defer server.Close()

	client := newReceivableTestClient(server.URL)

	summaries, err := client.FetchPendingByDueDate(context.Background(), shared.NewDate(2024, 6, 1), shared.NewDate(2024, 6, 3))

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.False(t, summaries[0].AmountReceived.Valid)
	assert.Equal(t, "300", summaries[0].Remaining().String())
	assert.True(t, summaries[0].ReceivedDate.IsZero())
}

func TestReceivableClient_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newReceivableTestClient(server.URL)

	summaries, err := client.FetchReceivedByReceivedDate(context.Background(), shared.NewDate(2024, 5, 1), shared.NewDate(2024, 5, 31))

	require.Error(t, err)
	assert.Nil(t, summaries)
	assert.Contains(t, err.Error(), "unexpected status 502")
}
