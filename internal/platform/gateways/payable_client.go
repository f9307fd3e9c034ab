package gateways

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cashflow-service/internal/config"
	"github.com/cashflow-service/internal/domain/shared"
	"github.com/cashflow-service/internal/domain/upstream"
)

// PayableClient talks to the accounts payable service over HTTP.
type PayableClient struct {
	logger  *slog.Logger
	baseURL string
	client  *http.Client
}

// NewPayableClient creates a PayableClient from the upstream configuration.
func NewPayableClient(logger *slog.Logger, cfg *config.UpstreamConfig) *PayableClient {
	return &PayableClient{
		logger:  logger,
		baseURL: trimBaseURL(cfg.PayableURL),
		client:  &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *PayableClient) FetchPaidByPaymentDate(ctx context.Context, start, end shared.Date) ([]upstream.PayableSummary, error) {
	var summaries []upstream.PayableSummary
	if err := fetchSummaries(ctx, c.client, c.baseURL+"/api/payables/summary-by-date", start, end, &summaries); err != nil {
		return nil, err
	}
	c.logger.Debug("Fetched paid payables", "count", len(summaries), "start", start, "end", end)
	return summaries, nil
}

func (c *PayableClient) FetchPendingByDueDate(ctx context.Context, start, end shared.Date) ([]upstream.PayableSummary, error) {
	var summaries []upstream.PayableSummary
	if err := fetchSummaries(ctx, c.client, c.baseURL+"/api/payables/pending-summary-by-due-date", start, end, &summaries); err != nil {
		return nil, err
	}
	c.logger.Debug("Fetched pending payables", "count", len(summaries), "start", start, "end", end)
	return summaries, nil
}
