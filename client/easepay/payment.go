package easepay

import (
	"context"
	"net/http"
)

// CreatePayment [POST /payment] sends an empty JSON object.
func (c *Client) CreatePayment(ctx context.Context) (*Response[Payment], error) {
	return send[Payment](ctx, c, http.MethodPost, "payment", struct{}{})
}

// GetPaymentDetails [GET /payment/{id}]. The id is inserted unescaped.
func (c *Client) GetPaymentDetails(ctx context.Context, paymentId string) (*Response[Payment], error) {
	return send[Payment](ctx, c, http.MethodGet, "payment/"+paymentId, nil)
}

// GetPaymentStatus [GET /payment/{id}/status]
func (c *Client) GetPaymentStatus(ctx context.Context, paymentId string) (*Response[PaymentStatus], error) {
	return send[PaymentStatus](ctx, c, http.MethodGet, "payment/"+paymentId+"/status", nil)
}

// GetPaymentHistory [GET /payment/history]
func (c *Client) GetPaymentHistory(ctx context.Context) (*Response[PaymentHistory], error) {
	return send[PaymentHistory](ctx, c, http.MethodGet, "payment/history", nil)
}
