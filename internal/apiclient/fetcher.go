package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Fetcher performs a single GET against an upstream JSON API.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string, query map[string]string) (*RawResponse, error)
}

// DefaultMaxBodyBytes caps how much of an upstream body is read.
const DefaultMaxBodyBytes = 10 << 20

// Client is the net/http backed Fetcher. It does not retry and keeps the
// wrapped client's timeout and redirect policy.
type Client struct {
	httpClient   *http.Client
	maxBodyBytes int64
}

func NewClient() *Client {
	return NewClientWithHTTPClient(nil)
}

// NewClientWithHTTPClient wraps an existing *http.Client, or a zero-value
// client when httpClient is nil.
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		httpClient:   httpClient,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
}

// Fetch issues GET endpoint?query and returns the raw response.
// Non-2xx statuses, undecodable bodies and bodies over the size cap are
// reported through RawResponse.Successful; only transport failures return
// an error.
func (c *Client) Fetch(ctx context.Context, endpoint string, query map[string]string) (*RawResponse, error) {
	u, err := buildURL(endpoint, query)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: fmt.Errorf("failed to read body: %w", err)}
	}

	raw := &RawResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}

	// an oversized body is kept truncated and never decoded
	if int64(len(body)) > c.maxBodyBytes {
		raw.Body = body[:c.maxBodyBytes]
		return raw, nil
	}

	payload, err := decodeJSON(body)
	if err != nil {
		return raw, nil
	}
	raw.Payload = payload
	raw.Successful = IsSuccessStatus(resp.StatusCode)

	return raw, nil
}

func buildURL(endpoint string, query map[string]string) (string, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidEndpoint, err)
	}
	if !u.IsAbs() || u.Host == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}

	if len(query) > 0 {
		q := u.Query()
		for k, v := range query {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// decodeJSON decodes exactly one JSON value, keeping numbers as json.Number.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}

	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after JSON value")
	}

	return payload, nil
}
