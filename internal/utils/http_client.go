package utils

import (
	"github.com/go-resty/resty/v2"
)

// clientUserAgent identifies catalogctl requests in the server access log.
const clientUserAgent = "catalogctl"

// HTTPClient embeds *resty.Client so catalogctl can extend it without
// wrapping every method.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that asks for JSON and
// identifies itself as catalogctl.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", clientUserAgent)

	return &HTTPClient{Client: client}
}
