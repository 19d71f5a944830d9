// Package gateway is the typed client for the upstream chit/gold REST
// backends. The backends are consumed as opaque services: no retries, no
// response caching, plain JSON over HTTP.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/aurumchit/agent_end/models"
	"github.com/aurumchit/agent_end/utils"
)

// Client talks to one upstream backend host.
type Client struct {
	baseURL    string
	line       models.ProductLine
	httpClient *http.Client
}

// Config holds client configuration.
type Config struct {
	BaseURL string
	Line    models.ProductLine
	Timeout time.Duration
}

// New creates a gateway client for one product line.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL: cfg.BaseURL,
		line:    cfg.Line,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// StatusError is a non-2xx upstream response.
type StatusError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message)
}

// LoginAgent authenticates the agent against the upstream backend.
func (c *Client) LoginAgent(ctx context.Context, req models.UpstreamLoginRequest) (*models.UpstreamLoginResponse, error) {
	var resp models.UpstreamLoginResponse
	if err := c.post(ctx, "/agent/login-agent", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAgentByID fetches the agent profile.
func (c *Client) GetAgentByID(ctx context.Context, id string) (*models.AgentInfo, error) {
	var agent models.AgentInfo
	if err := c.get(ctx, "/agent/get-agent-by-id/"+url.PathEscape(id), nil, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// GetTargets fetches every target overlapping the date window.
func (c *Client) GetTargets(ctx context.Context, from, to time.Time) ([]models.Target, error) {
	params := url.Values{}
	params.Set("fromDate", utils.FormatAPIDate(from))
	params.Set("toDate", utils.FormatAPIDate(to))

	var targets []models.Target
	if err := c.get(ctx, "/target/get-targets", params, &targets); err != nil {
		return nil, err
	}
	return targets, nil
}

// GetDetailedCommission fetches the commission roll-up for an agent and
// date window.
func (c *Client) GetDetailedCommission(ctx context.Context, agentID string, from, to time.Time) (*models.CommissionSummary, error) {
	params := url.Values{}
	params.Set("agent_id", agentID)
	params.Set("from_date", utils.FormatAPIDate(from))
	params.Set("to_date", utils.FormatAPIDate(to))

	var summary models.CommissionSummary
	if err := c.get(ctx, "/enroll/get-detailed-commission-per-month", params, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetAgentPayments fetches all payment records for an agent.
func (c *Client) GetAgentPayments(ctx context.Context, agentID string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := c.get(ctx, "/payment/get-payment-agent/"+url.PathEscape(agentID), nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// AttendanceModal asks whether the agent is required to punch today.
func (c *Client) AttendanceModal(ctx context.Context, agentID string, date time.Time) (*models.AttendanceModal, error) {
	body := map[string]string{
		"agent_id": agentID,
		"date":     utils.FormatAPIDate(date),
	}

	var modal models.AttendanceModal
	if err := c.post(ctx, "/employee-attendance/modal", body, &modal); err != nil {
		return nil, err
	}
	return &modal, nil
}

// AttendancePunch submits a punch for the agent.
func (c *Client) AttendancePunch(ctx context.Context, req models.AttendancePunchRequest) error {
	return c.post(ctx, "/employee-attendance/punch", req, nil)
}

// get issues a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	return c.do(httpReq, out)
}

// post issues a POST request with a JSON body and decodes the response
// into out when out is non-nil.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	utils.LogUpstreamCall(string(c.line), req.Method, req.URL.Path, resp.StatusCode, time.Since(start))

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{
			StatusCode: resp.StatusCode,
			Message:    upstreamMessage(data),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// upstreamMessage extracts a human-readable message from an error body.
func upstreamMessage(data []byte) string {
	var body struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Message != "" {
			return body.Message
		}
	}

	msg := string(data)
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}
