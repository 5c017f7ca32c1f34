// Package sherdogtest serves canned sherdog pages to scrapers under test.
package sherdogtest

import (
	"context"
	"embed"
	"fmt"
	"sync"
)

//go:embed testdata/*.html
var pages embed.FS

// Page returns the contents of a canned page such as "event.html".
func Page(name string) []byte {
	data, err := pages.ReadFile("testdata/" + name)
	if err != nil {
		panic(err)
	}
	return data
}

// Fetcher is an in-memory Fetcher keyed by URL that counts every call.
type Fetcher struct {
	mu    sync.Mutex
	pages map[string][]byte
	calls map[string]int
	// Err, when set, is returned from every Fetch.
	Err error
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		pages: map[string][]byte{},
		calls: map[string]int{},
	}
}

// Serve registers a canned page for url.
func (f *Fetcher) Serve(url, page string) *Fetcher {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pages[url] = Page(page)
	return f
}

func (f *Fetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[url]++
	if f.Err != nil {
		return nil, f.Err
	}
	body, ok := f.pages[url]
	if !ok {
		return nil, fmt.Errorf("sherdogtest: no page for %s", url)
	}
	return body, nil
}

// Calls returns how many times url was fetched.
func (f *Fetcher) Calls(url string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[url]
}

// TotalCalls returns the number of fetches across all URLs.
func (f *Fetcher) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}
