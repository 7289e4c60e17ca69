package easepay

import (
	"context"
	"net/http"
)

func (c *Client) CheckStatus(ctx context.Context) (*Response[HealthStatus], error) {
	return send[HealthStatus](ctx, c, http.MethodGet, "health", nil)
}

func (c *Client) GetWalletBalance(ctx context.Context) (*Response[WalletBalance], error) {
	return send[WalletBalance](ctx, c, http.MethodGet, "wallet/balance", nil)
}

func (c *Client) GetUsers(ctx context.Context) (*Response[UsersList], error) {
	return send[UsersList](ctx, c, http.MethodGet, "users", nil)
}
