// Package http provides the HTTP implementation of pepparse.Fetcher and
// pepparse.Downloader. Pages are read through an optional
// pepparse.ResponseCache; downloads always go to the network.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pepparse"
	"golang.org/x/text/encoding/unicode"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// Encoding is the text encoding every page is decoded with. The Python
// documentation sites do not reliably declare their charset.
const Encoding = "utf-8"

// Ensure Fetcher implements pepparse.Fetcher and pepparse.Downloader at compile time.
var (
	_ pepparse.Fetcher    = (*Fetcher)(nil)
	_ pepparse.Downloader = (*Fetcher)(nil)
)

// Fetcher retrieves pages and archives using HTTP GET requests.
// Each URL is requested at most once per call; there are no retries.
type Fetcher struct {
	client  *http.Client
	cache   pepparse.ResponseCache
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithCache reads pages through cache and stores successful responses in it.
func WithCache(cache pepparse.ResponseCache) Option {
	return func(f *Fetcher) {
		f.cache = cache
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch returns the page at url, from the cache when it holds the URL.
// Responses with a status other than 200 are returned as pages but never
// stored, so the caller sees whatever the server answered.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*pepparse.Page, error) {
	if f.cache != nil {
		resp, err := f.cache.FindResponse(ctx, url)
		if err == nil {
			return newPage(url, resp.StatusCode, resp.Body, true)
		} else if pepparse.ErrorCode(err) != pepparse.ENOTFOUND {
			return nil, err
		}
	}

	body, status, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	}

	if f.cache != nil && status == http.StatusOK {
		if err := f.cache.SaveResponse(ctx, &pepparse.Response{
			URL:        url,
			StatusCode: status,
			Body:       body,
			CreatedAt:  time.Now().UTC(),
		}); err != nil {
			return nil, err
		}
	}

	return newPage(url, status, body, false)
}

// Download returns the raw bytes at url without consulting the cache.
// A status other than 200 returns EINVALID so an error body is never
// saved as an archive.
func (f *Fetcher) Download(ctx context.Context, url string) ([]byte, error) {
	body, status, err := f.get(ctx, url)
	if err != nil {
		return nil, err
	} else if status != http.StatusOK {
		return nil, pepparse.Errorf(pepparse.EINVALID, "HTTP %d for %s", status, url)
	}
	return body, nil
}

// get performs a single GET request and returns the body with its status.
// Only transport and read failures are reported, as EUNAVAILABLE.
func (f *Fetcher) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, pepparse.Errorf(pepparse.EINVALID, "invalid request for %s: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, pepparse.Errorf(pepparse.EUNAVAILABLE, "GET %s: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, pepparse.Errorf(pepparse.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return body, resp.StatusCode, nil
}

// newPage decodes body as UTF-8, replacing invalid sequences.
func newPage(url string, status int, body []byte, fromCache bool) (*pepparse.Page, error) {
	text, err := unicode.UTF8.NewDecoder().Bytes(body)
	if err != nil {
		return nil, pepparse.Errorf(pepparse.EINVALID, "decoding %s as %s: %v", url, Encoding, err)
	}
	return &pepparse.Page{
		URL:        url,
		StatusCode: status,
		Text:       string(text),
		Encoding:   Encoding,
		FromCache:  fromCache,
	}, nil
}
