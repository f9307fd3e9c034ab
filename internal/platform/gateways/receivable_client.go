package gateways

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/cashflow-service/internal/config"
	"github.com/cashflow-service/internal/domain/shared"
	"github.com/cashflow-service/internal/domain/upstream"
)

// ReceivableClient talks to the accounts receivable service over HTTP.
type ReceivableClient struct {
	logger  *slog.Logger
	baseURL string
	client  *http.Client
}

// NewReceivableClient creates a ReceivableClient from the upstream configuration.
func NewReceivableClient(logger *slog.Logger, cfg *config.UpstreamConfig) *ReceivableClient {
	return &ReceivableClient{
		logger:  logger,
		baseURL: trimBaseURL(cfg.ReceivableURL),
		client:  &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (c *ReceivableClient) FetchReceivedByReceivedDate(ctx context.Context, start, end shared.Date) ([]upstream.ReceivableSummary, error) {
	var summaries []upstream.ReceivableSummary
	if err := fetchSummaries(ctx, c.client, c.baseURL+"/api/receivables/summary-by-date", start, end, &summaries); err != nil {
		return nil, err
	}
	c.logger.Debug("Fetched received receivables", "count", len(summaries), "start", start, "end", end)
	return summaries, nil
}

func (c *ReceivableClient) FetchPendingByDueDate(ctx context.Context, start, end shared.Date) ([]upstream.ReceivableSummary, error) {
	var summaries []upstream.ReceivableSummary
	if err := fetchSummaries(ctx, c.client, c.baseURL+"/api/receivables/pending-summary-by-due-date", start, end, &summaries); err != nil {
		return nil, err
	}
	c.logger.Debug("Fetched pending receivables", "count", len(summaries), "start", start, "end", end)
	return summaries, nil
}
