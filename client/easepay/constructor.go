package easepay

import (
	"easepay/client"
	httpclient "easepay/http_client"
	"log/slog"
	"net/http"
)

const (
	DefaultBaseUrl = "https://api.easepay.io/v1"
)

type config struct {
	baseUrl    string
	httpClient *http.Client
	logger     *slog.Logger
}

type Option func(*config)

// WithBaseUrl points the client at another gateway origin.
func WithBaseUrl(baseUrl string) Option {
	return func(c *config) {
		c.baseUrl = baseUrl
	}
}

// WithHttpClient sets the *http.Client requests go through. Timeouts, TLS
// and pooling are configured there.
func WithHttpClient(httpClient *http.Client) Option {
	return func(c *config) {
		c.httpClient = httpClient
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Client talks to the Easepay gateway. It holds no mutable state and is safe
// for concurrent use.
type Client struct {
	urlBuilder *client.UrlBuilder
	httpClient *httpclient.HttpClient
}

func NewClient(publicKey string, secretKey string, opts ...Option) *Client {
	cfg := &config{baseUrl: DefaultBaseUrl}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Client{
		urlBuilder: client.NewUrlBuilder(cfg.baseUrl, publicKey, secretKey),
		httpClient: httpclient.NewHttpClient(cfg.httpClient, cfg.logger),
	}
}

// UrlBuilder exposes the builder bound to this client's credentials, for
// endpoints the client has no method for yet.
func (c *Client) UrlBuilder() *client.UrlBuilder {
	return c.urlBuilder
}
