package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

var secretKeyParam = regexp.MustCompile(`secretKey=[^&"\s]*`)

// HttpClient issues exactly one request per call and hands back the raw
// response. Status codes are not interpreted and nothing is retried.
type HttpClient struct {
	client  *http.Client
	headers http.Header
	logger  *slog.Logger
}

func NewHttpClient(client *http.Client, logger *slog.Logger) *HttpClient {
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	return &HttpClient{client: client, headers: headers, logger: logger}
}

func (c *HttpClient) Get(ctx context.Context, url string) (*http.Response, error) {
	return c.Do(ctx, http.MethodGet, url, nil)
}

func (c *HttpClient) Post(ctx context.Context, url string, data any) (*http.Response, error) {
	return c.Do(ctx, http.MethodPost, url, data)
}

func (c *HttpClient) Put(ctx context.Context, url string, data any) (*http.Response, error) {
	return c.Do(ctx, http.MethodPut, url, data)
}

// Do sends one request. A nil data sends no body; anything else is sent as
// JSON. Errors from the underlying http.Client are returned as is.
func (c *HttpClient) Do(ctx context.Context, method string, url string, data any) (*http.Response, error) {
	var body io.Reader
	if data != nil {
		payload, err := json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		c.logger.Error("[HttpClient] Failed to build request", "error", Redact(err.Error()))
		return nil, err
	}
	for k, v := range c.headers {
		req.Header[k] = v
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestId := uuid.NewString()
	c.logger.Debug("[HttpClient] Sending request", "id", requestId, "method", method, "url", Redact(url))
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("[HttpClient] Failed to send request", "id", requestId, "error", Redact(err.Error()))
		return nil, err
	}
	c.logger.Debug("[HttpClient] Received response", "id", requestId, "status", resp.StatusCode)
	return resp, nil
}

// Redact masks the secretKey query parameter for logging. Error messages
// from net/http quote the request URL, so they go through here too.
func Redact(url string) string {
	return secretKeyParam.ReplaceAllString(url, "secretKey=***")
}
