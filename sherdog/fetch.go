package sherdog

import (
	"context"
	"fmt"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

// Fetcher retrieves the raw markup of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcherOptions configures NewHTTPFetcher.
type HTTPFetcherOptions struct {
	UserAgent string
	Timeout   time.Duration
}

// HTTPFetcher fetches pages over HTTP. It never retries.
type HTTPFetcher struct {
	http *resty.Client
}

// NewHTTPFetcher creates a resty-backed fetcher that passes Cloudflare's
// browser check.
func NewHTTPFetcher(opts HTTPFetcherOptions) *HTTPFetcher {
	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	if opts.UserAgent != "" {
		client.SetHeader("user-agent", opts.UserAgent)
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	return &HTTPFetcher{http: client}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	res, err := f.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if res.IsError() {
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, res.Status())
	}
	return res.Body(), nil
}
