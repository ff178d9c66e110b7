package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// deviceIDHeader carries the per-install identifier so the backend can
// distinguish devices sharing an account.
const deviceIDHeader = "X-Device-ID"

// HTTPClient talks JSON over HTTP(S) to the authentication backend.
//
// The wire contract is the one the original mobile app used:
//
//	POST {base}/api/account/login
//	{"username": "...", "password": "..."}
//
// with a success body of {"message":"successfull","result":{"token":"..."}}.
// The "successfull" literal (sic) is what the backend actually sends.
type HTTPClient struct {
	baseURL  string
	deviceID string
	httpc    *http.Client
}

// NewHTTPClient builds a client for the given base URL. deviceID may be
// empty, in which case the device header is omitted. timeout bounds each
// individual request; retries are deliberately not performed here.
func NewHTTPClient(baseURL string, deviceID string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:  baseURL,
		deviceID: deviceID,
		httpc:    &http.Client{Timeout: timeout},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Result  struct {
		Token string `json:"token"`
	} `json:"result"`
}

// successMessage is the backend's success marker, misspelling included.
const successMessage = "successfull"

func (c *HTTPClient) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/account/login", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.deviceID != "" {
		req.Header.Set(deviceIDHeader, c.deviceID)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return "", fmt.Errorf("%w: server returned %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode >= 400:
		return "", ErrInvalidCredentials
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	var lr loginResponse
	if err := json.Unmarshal(data, &lr); err != nil {
		return "", fmt.Errorf("%w: malformed response: %w", ErrUnavailable, err)
	}

	if lr.Message != successMessage {
		return "", ErrInvalidCredentials
	}
	if lr.Result.Token == "" {
		// A success marker without a token is unusable, not a rejection.
		return "", fmt.Errorf("%w: success response without token", ErrUnavailable)
	}

	return lr.Result.Token, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return fmt.Errorf("build ping request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: server returned %d", ErrUnavailable, resp.StatusCode)
	}
	return nil
}

// Close is a no-op for the pooled HTTP transport; it exists to satisfy the
// Client contract.
func (c *HTTPClient) Close() error {
	c.httpc.CloseIdleConnections()
	return nil
}
