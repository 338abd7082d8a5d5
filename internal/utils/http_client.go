package utils

import (
	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outbound request of the replica.
const UserAgent = "go-gallery-replica"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://catalog.example.com/api/dataset-images")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance with the
// replica's User-Agent and JSON content negotiation preset.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", UserAgent).
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}
}
