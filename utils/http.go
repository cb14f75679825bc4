package utils

import (
	"crypto/tls"
	"net/http"
	"time"
)

// DefaultUserAgent identifies outbound calls to LLM providers
const DefaultUserAgent = "Pivot/1.0 (+https://github.com/pivot/backend)"

// NewHTTPClient creates a configured HTTP client for provider requests.
// Every request carries userAgent unless the caller set one.
func NewHTTPClient(timeout time.Duration, userAgent string) *http.Client {
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: UserAgentMiddleware(transport, userAgent),
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return http.ErrUseLastResponse
			}
			return nil
		},
	}
}

// UserAgentMiddleware adds a user agent header to requests
func UserAgentMiddleware(next http.RoundTripper, userAgent string) http.RoundTripper {
	return &userAgentTransport{next: next, userAgent: userAgent}
}

type userAgentTransport struct {
	next      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", t.userAgent)
	}
	return t.next.RoundTrip(req)
}
