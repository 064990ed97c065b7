package pepparse

import "context"

// Fetcher retrieves documentation pages.
type Fetcher interface {
	// Fetch returns the page at url as UTF-8 text, whatever its status.
	// Returns EUNAVAILABLE when no response was received
	// (connection, DNS or timeout).
	Fetch(ctx context.Context, url string) (*Page, error)
}

// Downloader retrieves binary resources without consulting a cache.
type Downloader interface {
	// Download returns the raw bytes at url.
	// Returns EUNAVAILABLE when no response was received and EINVALID
	// for a status other than 200.
	Download(ctx context.Context, url string) ([]byte, error)
}
