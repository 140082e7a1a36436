package crates

import (
	"context"
	"net/url"
	"strings"

	"github.com/matzehuels/checkcrates/pkg/integrations"
)

const (
	// DefaultURL is the crates.io registry host.
	DefaultURL = "https://crates.io"

	// DefaultUserAgent identifies this client to crates.io, which rejects
	// requests without a User-Agent.
	DefaultUserAgent = "check-crates-client"

	searchPath = "/api/v1/crates"
)

// Client provides access to the crates.io search API.
//
// Each call issues a single request: there is no pagination, retry or
// response caching. Only the first page the registry returns is used.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a crates.io client.
//
// Parameters:
//   - baseURL: registry host, e.g. "https://crates.io" ("" for [DefaultURL])
//   - userAgent: User-Agent header value ("" for [DefaultUserAgent])
func NewClient(baseURL, userAgent string) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		Client:  integrations.NewClient(integrations.RegistryHeaders(userAgent)),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// SearchURL returns the search endpoint URL for query.
func (c *Client) SearchURL(query string) string {
	return integrations.Endpoint(c.baseURL, searchPath, url.Values{"q": {query}})
}

// Fetch runs a search and returns the raw response body.
//
// Returns:
//   - NETWORK_ERROR if the request could not complete or the status was not 200
//   - RESPONSE_READ_ERROR if the body could not be read
func (c *Client) Fetch(ctx context.Context, query string) (string, error) {
	return c.GetText(ctx, c.SearchURL(query))
}

// Search runs a search and decodes the matching crates.
// It stops at the first failure; see [Client.Fetch] and [Decode] for the
// error codes.
func (c *Client) Search(ctx context.Context, query string) ([]Crate, error) {
	text, err := c.Fetch(ctx, query)
	if err != nil {
		return nil, err
	}
	return Decode(text)
}
