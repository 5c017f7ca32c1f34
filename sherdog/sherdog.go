// Package sherdog scrapes promotion, event and fighter pages from sherdog.com
// into typed records.
package sherdog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultBaseURL is the site every record URL is built from.
const DefaultBaseURL = "http://www.sherdog.com"

// ErrNotFound is returned when a page has no section for the requested record.
var ErrNotFound = errors.New("sherdog: not found")

const schemaEvent = "http://schema.org/Event"

// Scraper builds records from live pages.
type Scraper struct {
	fetcher Fetcher
	baseURL string
	now     func() time.Time
}

// Options configures New. Zero values fall back to DefaultBaseURL and time.Now.
type Options struct {
	BaseURL string
	Now     func() time.Time
}

// New creates a Scraper that reads pages through fetcher.
func New(fetcher Fetcher, opts Options) *Scraper {
	s := &Scraper{
		fetcher: fetcher,
		baseURL: opts.BaseURL,
		now:     opts.Now,
	}
	if s.baseURL == "" {
		s.baseURL = DefaultBaseURL
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *Scraper) document(ctx context.Context, path string, id int) (*goquery.Document, error) {
	url := fmt.Sprintf("%s/%s/x-%d", s.baseURL, path, id)
	body, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", url, err)
	}
	return doc, nil
}
