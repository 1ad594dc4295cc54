package musixmatch

import (
	"strings"
	"time"

	"github.com/devaoto/go-musixmatch/pkg/httpclient"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the Musixmatch API v1.1 endpoint.
	DefaultBaseURL = "https://api.musixmatch.com/ws/1.1/"

	// apiKeyParam is the reserved query parameter carrying the credential.
	apiKeyParam = "apikey"

	defaultTimeout = 15 * time.Second
)

// Client calls the Musixmatch web service. The zero value is not usable;
// construct one with New.
//
// Calls are independent and may be issued concurrently; the client holds no
// cross-call state besides the API key.
type Client struct {
	apiKey  string
	baseURL string
	http    httpclient.Client
	timeout time.Duration
	log     *zap.SugaredLogger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the service base URL. Used for testing.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/") + "/"
	}
}

// WithHTTPClient injects a custom transport.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the transport timeout for the default resty client.
// Ignored when WithHTTPClient is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger enables debug request tracing. A nil logger keeps the client silent.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a Client authenticated with apiKey. An empty key is allowed;
// the remote service rejects unauthenticated calls with status 401.
func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.http == nil {
		c.http = httpclient.NewRestyClient(c.timeout)
	}
	return c
}

// SetAPIKey replaces the stored credential for subsequent calls.
func (c *Client) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}
