package easepay

import (
	"context"
	"net/http"
)

func (c *Client) GetStoreInfo(ctx context.Context) (*Response[StoreInfo], error) {
	return send[StoreInfo](ctx, c, http.MethodGet, "store", nil)
}

// UpdateStoreInfo sends info as the PUT body without checking it.
func (c *Client) UpdateStoreInfo(ctx context.Context, info *StoreInfo) (*Response[StoreInfo], error) {
	return send[StoreInfo](ctx, c, http.MethodPut, "store", info)
}

func (c *Client) GetStoreTransactions(ctx context.Context) (*Response[StoreTransactions], error) {
	return send[StoreTransactions](ctx, c, http.MethodGet, "store/transactions", nil)
}
