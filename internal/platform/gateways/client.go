// Package gateways holds the HTTP clients for the accounts payable and
// accounts receivable services. Each call is a single attempt with a bounded
// timeout; callers decide how to degrade when an upstream is unavailable.
package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/cashflow-service/internal/domain/shared"
)

// fetchSummaries issues a GET against endpoint with the inclusive
// startDate/endDate range and decodes the JSON array response into out.
func fetchSummaries(ctx context.Context, client *http.Client, endpoint string, start, end shared.Date, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s: %w", endpoint, err)
	}

	q := req.URL.Query()
	q.Set("startDate", start.String())
	q.Set("endDate", end.String())
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}
	return nil
}

func trimBaseURL(raw string) string {
	return strings.TrimRight(raw, "/")
}
