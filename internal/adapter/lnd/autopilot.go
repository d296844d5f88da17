// Package lnd talks to the lnd REST gateway.
package lnd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"wallet-settings/internal/core/ports"
)

const (
	autopilotModifyPath = "/v2/autopilot/modify"
	macaroonHeader      = "Grpc-Metadata-macaroon"
	maxErrorBody        = 4 << 10
)

// AutopilotClient implements ports.DaemonClient over lnd's REST gateway.
type AutopilotClient struct {
	http     ports.HTTPClient
	baseURL  string
	macaroon string
}

// NewAutopilotClient creates a client for the gateway at restURL. macaroonHex
// is sent with every request when non-empty.
func NewAutopilotClient(httpClient ports.HTTPClient, restURL, macaroonHex string) *AutopilotClient {
	return &AutopilotClient{
		http:     httpClient,
		baseURL:  strings.TrimRight(restURL, "/"),
		macaroon: macaroonHex,
	}
}

type modifyRequest struct {
	Enable bool `json:"enable"`
}

// gatewayError is the grpc-gateway error body.
type gatewayError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// SendAutopilotCommand enables or disables autopilot. A nil error means lnd
// accepted the new state.
func (c *AutopilotClient) SendAutopilotCommand(ctx context.Context, enabled bool) error {
	body, err := json.Marshal(modifyRequest{Enable: enabled})
	if err != nil {
		return fmt.Errorf("lnd: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+autopilotModifyPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("lnd: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.macaroon != "" {
		req.Header.Set(macaroonHeader, c.macaroon)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("lnd: autopilot modify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var gwErr gatewayError
	if json.Unmarshal(raw, &gwErr) == nil && gwErr.Message != "" {
		return fmt.Errorf("lnd: autopilot modify: status %d: %s", resp.StatusCode, gwErr.Message)
	}
	return fmt.Errorf("lnd: autopilot modify: status %d", resp.StatusCode)
}
