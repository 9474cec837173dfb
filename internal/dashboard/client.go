package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Autonomous-Utility-Response-Agent/Aura-website/internal/model"
)

// Client talks to the grid API the way the browser dashboard does:
// status polls plus on-demand action calls.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the given API base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type gridStatusResponse struct {
	Status      model.GridStatus   `json:"status"`
	ActiveEvent *model.ActiveEvent `json:"activeEvent"`
}

// FetchStatus reads /grid-status.
func (c *Client) FetchStatus(ctx context.Context) (model.GridState, error) {
	var resp gridStatusResponse
	if err := c.get(ctx, "/grid-status", &resp); err != nil {
		return model.GridState{}, err
	}
	return model.GridState{Status: resp.Status, Event: resp.ActiveEvent}, nil
}

type actionResponse struct {
	Success         bool             `json:"success"`
	Message         string           `json:"message"`
	TransactionHash string           `json:"transactionHash"`
	RewardExact     decimal.Decimal  `json:"rewardExact"`
	GridStatus      model.GridStatus `json:"gridStatus"`
}

// SimulateStressEvent triggers a stress event with server defaults.
func (c *Client) SimulateStressEvent(ctx context.Context) (string, error) {
	var resp actionResponse
	if err := c.post(ctx, "/simulate-stress-event", nil, &resp); err != nil {
		return "", err
	}
	if !resp.Success {
		return "", fmt.Errorf("simulate stress event rejected: %s", resp.Message)
	}
	return resp.TransactionHash, nil
}

// ReportSavings submits a proof-of-saving for one device.
func (c *Client) ReportSavings(ctx context.Context, deviceAddress string, watts float64) (ReportResult, error) {
	body := map[string]any{
		"deviceAddress": deviceAddress,
		"savings":       watts,
	}
	var resp actionResponse
	if err := c.post(ctx, "/report-savings", body, &resp); err != nil {
		return ReportResult{}, err
	}
	if !resp.Success {
		return ReportResult{}, fmt.Errorf("savings report rejected: %s", resp.Message)
	}
	return ReportResult{
		TransactionRef: resp.TransactionHash,
		Reward:         resp.RewardExact,
		GridStatus:     resp.GridStatus,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Failure payloads are still JSON; decode before rejecting so the
	// caller gets the server's message.
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", req.URL.Path, err)
	}
	return nil
}
