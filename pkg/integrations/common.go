package integrations

import (
	"net/http"
	"net/url"
	"time"
)

const httpTimeout = 10 * time.Second

// NewHTTPClient returns the client used for registry calls. A request that
// has not completed within httpTimeout fails as a transport error.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// RegistryHeaders returns the headers sent with every registry request.
func RegistryHeaders(userAgent string) map[string]string {
	return map[string]string{
		"User-Agent": userAgent,
		"Accept":     "application/json",
	}
}

// Endpoint joins base and path and appends params as a query string.
// base is expected without a trailing slash.
func Endpoint(base, path string, params url.Values) string {
	if len(params) == 0 {
		return base + path
	}
	return base + path + "?" + params.Encode()
}
