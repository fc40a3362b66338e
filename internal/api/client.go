package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Client talks to the rustico backend. Every method is a single round trip:
// no caching, no retries. A 401 on any call invokes the session-expiry hook
// exactly once before the method returns an AuthError.
type Client struct {
	base    string
	http    *http.Client
	log     zerolog.Logger
	expired func()
}

// NewClient builds a client for the backend at baseURL. httpClient may be
// nil, in which case http.DefaultClient is used. onSessionExpired may be nil.
func NewClient(baseURL string, httpClient *http.Client, log zerolog.Logger, onSessionExpired func()) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base:    strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		log:     log,
		expired: onSessionExpired,
	}
}

// do issues one request and reads the whole body. The 401 hook fires here so
// every endpoint shares the same expiry behavior. Callers interpret the
// status themselves; only transport failures and 401 produce an error.
func (c *Client) do(ctx context.Context, method, path string, payload any) ([]byte, int, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, 0, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		if c.expired != nil {
			c.expired()
		}
		return data, resp.StatusCode, &AuthError{}
	}
	return data, resp.StatusCode, nil
}

// serverErr extracts the backend's error message from a non-2xx body.
func serverErr(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	// body may not be JSON at all; the generic message covers that
	_ = json.Unmarshal(body, &payload)
	return &ServerError{Status: status, Message: payload.Error}
}

func ok(status int) bool { return status >= 200 && status < 300 }

// Response shape checking is centralized below. Each endpoint decodes its
// body into a key set and pulls typed fields out of it, so every mismatch
// yields a FormatError naming the offending field.

func objectFields(body []byte, envelope string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, &FormatError{Field: envelope, Reason: "body is not a JSON object"}
	}
	return fields, nil
}

func fieldRaw(fields map[string]json.RawMessage, name string) (json.RawMessage, error) {
	raw, present := fields[name]
	if !present {
		return nil, &FormatError{Field: name, Reason: "missing"}
	}
	return raw, nil
}

func fieldString(fields map[string]json.RawMessage, name string) (string, error) {
	raw, err := fieldRaw(fields, name)
	if err != nil {
		return "", err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &FormatError{Field: name, Reason: "not a string"}
	}
	return s, nil
}

// fieldDecimal accepts a JSON number or a numeric string; everything else is
// a FormatError. This mirrors the backend, which serializes amounts either
// way depending on the storage path.
func fieldDecimal(fields map[string]json.RawMessage, name string) (decimal.Decimal, error) {
	raw, err := fieldRaw(fields, name)
	if err != nil {
		return decimal.Decimal{}, err
	}
	var d decimal.Decimal
	if err := json.Unmarshal(raw, &d); err != nil {
		return decimal.Decimal{}, &FormatError{Field: name, Reason: "not a number"}
	}
	return d, nil
}

func fieldInt(fields map[string]json.RawMessage, name string) (int, error) {
	raw, err := fieldRaw(fields, name)
	if err != nil {
		return 0, err
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, &FormatError{Field: name, Reason: "not an integer"}
	}
	return n, nil
}

// optionalString returns "" when the key is absent or null.
func optionalString(fields map[string]json.RawMessage, name string) (string, error) {
	raw, present := fields[name]
	if !present || string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", &FormatError{Field: name, Reason: "not a string"}
	}
	return s, nil
}

// jsonNumber marshals a decimal as a bare JSON number; the backend rejects
// quoted amounts.
type jsonNumber struct{ decimal.Decimal }

func (n jsonNumber) MarshalJSON() ([]byte, error) {
	return []byte(n.Decimal.String()), nil
}

// optionalStrings returns nil when the key is absent or null.
func optionalStrings(fields map[string]json.RawMessage, name string) ([]string, error) {
	raw, present := fields[name]
	if !present || string(raw) == "null" {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &FormatError{Field: name, Reason: "not an array of strings"}
	}
	return out, nil
}
