package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions configures a client created by [NewHTTPClient].
// Zero values leave the resty defaults in place.
type HTTPClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// NewHTTPClient creates a resty-backed client configured from opts.
// Each call returns an independent client with its own connection pool.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{BaseURL: "https://notes.example"})
//	resp, err := client.R().SetBody(req).Post("/download")
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New().
		SetHeader("Accept", "application/json")

	if opts.BaseURL != "" {
		client.SetBaseURL(opts.BaseURL)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &HTTPClient{Client: client}
}
