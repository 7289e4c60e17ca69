package easepay

import (
	"context"
	"easepay/client"
	"fmt"
	"net/http"
)

// Response is the gateway's HTTP response, untouched. T names the JSON shape
// the endpoint is expected to return; nothing is read until Decode is called.
type Response[T any] struct {
	*http.Response
}

func (r *Response[T]) Raw() *http.Response {
	return r.Response
}

// Decode reads and closes the body and unmarshals it into T. The status
// code is not checked.
func (r *Response[T]) Decode() (*T, error) {
	defer r.Body.Close()
	var data T
	if err := client.ReadJson(r.Body, &data); err != nil {
		return nil, fmt.Errorf("failed to decode response (status %d): %w", r.StatusCode, err)
	}
	return &data, nil
}

func send[T any](ctx context.Context, c *Client, method string, path string, body any) (*Response[T], error) {
	resp, err := c.httpClient.Do(ctx, method, c.urlBuilder.BuildUrl(path), body)
	if err != nil {
		return nil, err
	}
	return &Response[T]{Response: resp}, nil
}
