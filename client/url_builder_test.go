package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	testBase   = "https://api.easepay.io/v1"
	testPublic = "pub123"
	testSecret = "sec456"
)

func TestUrlBuilder_BuildUrl(t *testing.T) {
	b := NewUrlBuilder(testBase, testPublic, testSecret)

	tests := []struct {
		name string
		path string
		want string
	}{
		{"plain", "health", testBase + "/health?publicKey=pub123&secretKey=sec456"},
		{"nested", "payment/abc/status", testBase + "/payment/abc/status?publicKey=pub123&secretKey=sec456"},
		{"surrounding whitespace", "  \tstore/transactions \n", testBase + "/store/transactions?publicKey=pub123&secretKey=sec456"},
		{"reserved characters kept", "payment/a b#c", testBase + "/payment/a b#c?publicKey=pub123&secretKey=sec456"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.BuildUrl(tt.path))
		})
	}
}

func TestUrlBuilder_TrimIsIdempotent(t *testing.T) {
	b := NewUrlBuilder(testBase, testPublic, testSecret)
	assert.Equal(t, b.BuildUrl("health"), b.BuildUrl(" health "))
	assert.Equal(t, b.BuildUrl("health"), b.BuildUrl("health"))
}

func TestUrlBuilder_BuildUrlWithQuery(t *testing.T) {
	b := NewUrlBuilder(testBase, testPublic, testSecret)

	t.Run("nil query matches BuildUrl", func(t *testing.T) {
		assert.Equal(t, b.BuildUrl(" x "), b.BuildUrlWithQuery(" x ", nil))
	})

	t.Run("empty query matches BuildUrl", func(t *testing.T) {
		assert.Equal(t, b.BuildUrl("payment/history"), b.BuildUrlWithQuery("payment/history", NewQueryBuilder()))
	})

	t.Run("single parameter", func(t *testing.T) {
		q := NewQueryBuilder().Add("a", "1")
		assert.Equal(t, testBase+"/x?a=1&publicKey=pub123&secretKey=sec456", b.BuildUrlWithQuery("x", q))
	})

	t.Run("insertion order", func(t *testing.T) {
		q := NewQueryBuilder().Add("status", "pending").Add("page", 2).Add("limit", 50)
		assert.Equal(t,
			testBase+"/payment/history?status=pending&page=2&limit=50&publicKey=pub123&secretKey=sec456",
			b.BuildUrlWithQuery(" payment/history", q),
		)
	})
}
