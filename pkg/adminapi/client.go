package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the remote admin REST API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	// Primary spelling for the shipping cancellation date. The alternate
	// spelling is always written alongside it, see UpdateShipping.
	cancelledDateField string
}

func NewClient(baseURL string, timeout time.Duration, cancelledDateField string) *Client {
	if cancelledDateField == "" {
		cancelledDateField = "cancelled_date"
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		cancelledDateField: cancelledDateField,
	}
}

// APIError is a non-2xx response, carrying whatever message the server
// supplied.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("admin api: HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("admin api: HTTP %d", e.StatusCode)
}

// IsNotFound reports whether err is a 404 response. Callers fetching
// maybe-absent records treat this as "empty", not as a failure.
func IsNotFound(err error) bool {
	apiErr, ok := err.(*APIError)
	return ok && apiErr.StatusCode == http.StatusNotFound
}

// do sends one JSON request and returns the body and status code. A
// transport failure returns a wrapped error; non-2xx statuses are returned
// to the caller as-is so each endpoint can decide what counts as an error.
func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}
	return data, resp.StatusCode, nil
}

// doJSON runs a request and fails on any non-2xx status, extracting the
// server-supplied message when present.
func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	data, status, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, &APIError{StatusCode: status, Message: extractMessage(data)}
	}
	return data, nil
}

// extractMessage pulls a human-readable message out of an error body,
// trying the common field names before falling back to the raw text.
func extractMessage(data []byte) string {
	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		if envelope.Error != "" {
			return envelope.Error
		}
	}
	return strings.TrimSpace(string(data))
}

// decodeList tolerates the backend's inconsistent list envelopes: a bare
// array, or an object wrapping the array under "data" or a resource-named
// key. Anything else decodes to an empty list.
func decodeList[T any](data []byte, keys ...string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return []T{}, nil
	}
	if trimmed[0] == '[' {
		var out []T
		if err := json.Unmarshal(trimmed, &out); err != nil {
			return nil, fmt.Errorf("failed to parse list response: %w", err)
		}
		return out, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse list response: %w", err)
	}
	for _, key := range append([]string{"data"}, keys...) {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		candidate := bytes.TrimSpace(raw)
		if len(candidate) == 0 || candidate[0] != '[' {
			continue
		}
		var out []T
		if err := json.Unmarshal(candidate, &out); err != nil {
			return nil, fmt.Errorf("failed to parse list response: %w", err)
		}
		return out, nil
	}
	return []T{}, nil
}
