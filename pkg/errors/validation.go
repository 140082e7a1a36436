package errors

import (
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxSearchTermLength bounds the query sent to the registry.
const maxSearchTermLength = 256

// ValidateSearchTerm checks a registry search term.
//
// The rules:
//   - No empty or whitespace-only terms
//   - No control characters or null bytes
//   - Maximum length of 256 characters
//
// Spaces are allowed; the registry treats them as separate keywords.
func ValidateSearchTerm(term string) error {
	if strings.TrimSpace(term) == "" {
		return New(ErrCodeInvalidInput, "search term cannot be empty")
	}

	if utf8.RuneCountInString(term) > maxSearchTermLength {
		return New(ErrCodeInvalidInput, "search term too long (max %d characters)", maxSearchTermLength)
	}

	for _, r := range term {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "search term contains invalid control characters")
		}
	}

	return nil
}

// ValidateURL validates a registry base URL.
// It must parse, use the http or https scheme, and name a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid URL %q", rawURL)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidInput, "URL has no host: %q", rawURL)
	}

	return nil
}
