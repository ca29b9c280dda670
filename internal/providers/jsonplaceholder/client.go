package jsonplaceholder

import (
	"context"

	"api-consumer/internal/apiclient"
)

// API Docs: https://jsonplaceholder.typicode.com/guide/
// Sample request: https://jsonplaceholder.typicode.com/posts
const (
	baseURL = "https://jsonplaceholder.typicode.com/posts"
)

type Client struct {
	fetcher apiclient.Fetcher
	baseURL string
}

func NewClient(fetcher apiclient.Fetcher, endpoint string) *Client {
	if endpoint == "" {
		endpoint = baseURL
	}
	return &Client{
		fetcher: fetcher,
		baseURL: endpoint,
	}
}

// Posts fetches the full post listing. The endpoint takes no parameters.
func (c *Client) Posts(ctx context.Context) (*apiclient.RawResponse, error) {
	return c.fetcher.Fetch(ctx, c.baseURL, nil)
}
