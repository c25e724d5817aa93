package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/simonvc/minibank/internal/bank"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type BalanceResponse struct {
	AccountID string  `json:"account_id"`
	Balance   float64 `json:"balance"`
	Formatted string  `json:"formatted"`
}

func (c *Client) GetAccount(ctx context.Context) (*bank.Snapshot, error) {
	var result bank.Snapshot
	if err := c.get(ctx, "/api/v1/account", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) GetBalance(ctx context.Context) (*BalanceResponse, error) {
	var result BalanceResponse
	if err := c.get(ctx, "/api/v1/account/balance", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Deposit(ctx context.Context, amount float64) (*bank.Snapshot, error) {
	var result bank.Snapshot
	if err := c.post(ctx, "/api/v1/account/deposit", map[string]any{"amount": amount}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Withdraw(ctx context.Context, amount float64) (*bank.Snapshot, error) {
	var result bank.Snapshot
	if err := c.post(ctx, "/api/v1/account/withdraw", map[string]any{"amount": amount}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Close(ctx context.Context) (*bank.Snapshot, error) {
	var result bank.Snapshot
	if err := c.post(ctx, "/api/v1/account/close", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping checks if the server is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.get(ctx, "/api/v1/health", nil)
}

func (c *Client) get(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.doRequest(req, result)
}

func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.doRequest(req, result)
}

type apiError struct {
	Error string    `json:"error"`
	Kind  bank.Kind `json:"kind"`
}

func (c *Client) doRequest(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error != "" {
			if sentinel := bank.ErrorForKind(apiErr.Kind); sentinel != nil {
				return fmt.Errorf("server error (%d): %w", resp.StatusCode, sentinel)
			}
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	if result != nil {
		if err := json.Unmarshal(bodyBytes, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
