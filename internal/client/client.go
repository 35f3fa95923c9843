// Package client is a Go client for the journal's REST API, useful for
// scripted imports and the integration tests.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"trade-journal-go/internal/models"
	"trade-journal-go/internal/stats"
)

// Client talks to a running journal server.
type Client struct {
	http *resty.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:5000".
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
	}
}

// apiError is the error envelope every endpoint uses.
type apiError struct {
	Error string `json:"error"`
}

// do executes a request and folds non-2xx responses into an error carrying
// the server's message.
func (c *Client) do(ctx context.Context, method, url string, body, result any) error {
	var apiErr apiError
	req := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetError(&apiErr)
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, url)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, url, err)
	}
	if resp.IsError() {
		if apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, url, apiErr.Error, resp.StatusCode())
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, url, resp.StatusCode())
	}
	return nil
}

// CreateTrade logs a new trade.
func (c *Client) CreateTrade(ctx context.Context, input models.TradeInput) (*models.Trade, error) {
	var trade models.Trade
	if err := c.do(ctx, http.MethodPost, "/api/trades", input, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// GetTrade fetches one trade by id.
func (c *Client) GetTrade(ctx context.Context, id int) (*models.Trade, error) {
	var trade models.Trade
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/trades/%d", id), nil, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// ListTrades fetches all trades, most recent first.
func (c *Client) ListTrades(ctx context.Context) ([]models.Trade, error) {
	var trades []models.Trade
	if err := c.do(ctx, http.MethodGet, "/api/trades", nil, &trades); err != nil {
		return nil, err
	}
	return trades, nil
}

// UpdateTrade applies a partial update to a trade.
func (c *Client) UpdateTrade(ctx context.Context, id int, update models.TradeUpdate) (*models.Trade, error) {
	var trade models.Trade
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/trades/%d", id), update, &trade); err != nil {
		return nil, err
	}
	return &trade, nil
}

// DeleteTrade removes a trade.
func (c *Client) DeleteTrade(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/trades/%d", id), nil, nil)
}

// Stats fetches the performance snapshot for a date range. Nil bounds fall
// back to the server's default trailing 30 days.
func (c *Client) Stats(ctx context.Context, startDate, endDate *time.Time) (*stats.Snapshot, error) {
	var snap stats.Snapshot
	req := c.http.R().
		SetContext(ctx).
		SetResult(&snap)
	if startDate != nil {
		req.SetQueryParam("startDate", startDate.Format("2006-01-02"))
	}
	if endDate != nil {
		req.SetQueryParam("endDate", endDate.Format("2006-01-02"))
	}

	resp, err := req.Get("/api/stats")
	if err != nil {
		return nil, fmt.Errorf("request GET /api/stats failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("GET /api/stats: unexpected status %d", resp.StatusCode())
	}
	return &snap, nil
}

// CreateJournalEntry logs a new daily journal entry.
func (c *Client) CreateJournalEntry(ctx context.Context, input models.JournalEntryInput) (*models.JournalEntry, error) {
	var entry models.JournalEntry
	if err := c.do(ctx, http.MethodPost, "/api/journal", input, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListJournalEntries fetches all journal entries, most recent first.
func (c *Client) ListJournalEntries(ctx context.Context) ([]models.JournalEntry, error) {
	var entries []models.JournalEntry
	if err := c.do(ctx, http.MethodGet, "/api/journal", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
