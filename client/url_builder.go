package client

import "strings"

// UrlBuilder renders gateway request URLs. Credentials travel as plain
// query parameters; the gateway does not accept them any other way.
type UrlBuilder struct {
	baseUrl   string
	publicKey string
	secretKey string
}

func NewUrlBuilder(baseUrl string, publicKey string, secretKey string) *UrlBuilder {
	return &UrlBuilder{
		baseUrl:   baseUrl,
		publicKey: publicKey,
		secretKey: secretKey,
	}
}

func (b *UrlBuilder) BaseUrl() string {
	return b.baseUrl
}

// BuildUrl returns {baseUrl}/{path}?publicKey=...&secretKey=... with path
// trimmed of surrounding whitespace. The path is not escaped.
func (b *UrlBuilder) BuildUrl(path string) string {
	return b.BuildUrlWithQuery(path, nil)
}

// BuildUrlWithQuery is BuildUrl with extra parameters placed before the
// credentials, in the builder's insertion order. A nil or empty query
// renders the same URL as BuildUrl.
func (b *UrlBuilder) BuildUrlWithQuery(path string, query *QueryBuilder) string {
	sb := strings.Builder{}
	sb.WriteString(b.baseUrl)
	sb.WriteString("/")
	sb.WriteString(strings.TrimSpace(path))
	sb.WriteString("?")
	for _, p := range query.Params() {
		sb.WriteString(p.Key + "=" + p.Value + "&")
	}
	sb.WriteString("publicKey=" + b.publicKey)
	sb.WriteString("&secretKey=" + b.secretKey)
	return sb.String()
}
