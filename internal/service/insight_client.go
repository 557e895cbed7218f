package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"personalysis/internal/model"
)

var ErrInsightsDisabled = errors.New("insight service not configured")

// InsightGenerator produces narrative summaries for a stats report. The
// implementation is an external text service consumed as an opaque call.
type InsightGenerator interface {
	GenerateInsights(ctx context.Context, report *model.StatsReport) (*InsightResult, error)
}

// InsightResult is the narrative block rendered alongside the report
type InsightResult struct {
	Summary         string   `json:"summary"`
	MarketFit       string   `json:"marketFit,omitempty"`
	PricingStrategy string   `json:"pricingStrategy,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// InsightClient calls the external insight text API with retries. Transient
// failures are retried with exponential backoff; the caller still has to
// handle a final error, insights are never required for a report.
type InsightClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewInsightClient creates a new insight client. An empty baseURL disables
// the integration.
func NewInsightClient(baseURL, apiKey string) *InsightClient {
	return &InsightClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled reports whether the integration is configured
func (c *InsightClient) Enabled() bool {
	return c.baseURL != ""
}

// GenerateInsights posts the report to the text service and decodes the
// narrative result.
func (c *InsightClient) GenerateInsights(ctx context.Context, report *model.StatsReport) (*InsightResult, error) {
	if !c.Enabled() {
		return nil, ErrInsightsDisabled
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return nil, fmt.Errorf("insight: encode report: %w", err)
	}

	var result InsightResult
	var lastErr error
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/insights", bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)
		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("insight service returned %d", resp.StatusCode)
			return lastErr
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("insight service returned %d: %s", resp.StatusCode, string(body)))
		}
		if err := json.Unmarshal(body, &result); err != nil {
			return backoff.Permanent(fmt.Errorf("insight: decode result: %w", err))
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 60 * time.Second
	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		if lastErr != nil {
			return nil, fmt.Errorf("insight generation failed: %w", lastErr)
		}
		return nil, err
	}
	return &result, nil
}
