package openweathermap

import (
	"context"
	"errors"

	"api-consumer/internal/apiclient"
)

// API Docs: https://openweathermap.org/current
// Sample request: http://api.openweathermap.org/data/2.5/weather?q=London&appid={key}&units=metric
const (
	baseURL = "http://api.openweathermap.org/data/2.5/weather"
	// Temperatures come back in Celsius.
	units = "metric"
)

// ErrMissingAPIKey is returned by NewClient when no key is configured.
var ErrMissingAPIKey = errors.New("openweathermap: API key is required")

type Client struct {
	fetcher apiclient.Fetcher
	baseURL string
	apiKey  string
}

// NewClient builds a client for the current weather endpoint. An empty
// endpoint falls back to the public API.
func NewClient(fetcher apiclient.Fetcher, endpoint, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if endpoint == "" {
		endpoint = baseURL
	}
	return &Client{
		fetcher: fetcher,
		baseURL: endpoint,
		apiKey:  apiKey,
	}, nil
}

// CurrentWeather fetches current conditions for a city name.
func (c *Client) CurrentWeather(ctx context.Context, city string) (*apiclient.RawResponse, error) {
	return c.fetcher.Fetch(ctx, c.baseURL, map[string]string{
		"q":     city,
		"appid": c.apiKey,
		"units": units,
	})
}
