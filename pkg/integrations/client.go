package integrations

import (
	"context"
	"io"
	"net/http"
	"time"

	apperrors "github.com/matzehuels/checkcrates/pkg/errors"
	"github.com/matzehuels/checkcrates/pkg/observability"
)

// Client provides shared HTTP functionality for registry API clients.
// It applies common request headers and classifies failures into the
// transport and response-read error codes of [apperrors].
//
// A Client issues exactly one request per call. It never retries and never
// caches responses.
type Client struct {
	http    *http.Client
	headers map[string]string
}

// NewClient creates a Client with the given default headers.
// Headers are applied to all requests made through this client.
// Pass nil for headers if no default headers are needed.
func NewClient(headers map[string]string) *Client {
	return &Client{
		http:    NewHTTPClient(),
		headers: headers,
	}
}

// GetText performs an HTTP GET request and returns the response body as a string.
//
// Returns:
//   - an [apperrors.ErrCodeNetwork] error if the request could not complete
//     or the registry answered with a non-200 status
//   - an [apperrors.ErrCodeResponseRead] error if the body could not be read
//     to completion
func (c *Client) GetText(ctx context.Context, url string) (string, error) {
	body, err := c.doRequest(ctx, url)
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeResponseRead, err, "failed to read response")
	}
	return string(data), nil
}

func (c *Client) doRequest(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "failed to build request")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, apperrors.Wrap(apperrors.ErrCodeNetwork, err, "failed to call api")
	}
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

// checkStatus rejects every status but 200 as a transport failure. The body
// of an error response is not read, so a 4xx or 5xx never reaches the
// decoder as a DECODE_ERROR.
func checkStatus(code int) error {
	if code == http.StatusOK {
		return nil
	}
	return apperrors.New(apperrors.ErrCodeNetwork, "failed to call api: status %d", code)
}
