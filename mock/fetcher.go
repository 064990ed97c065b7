package mock

import (
	"context"

	"github.com/fwojciec/pepparse"
)

var (
	_ pepparse.Fetcher    = (*Fetcher)(nil)
	_ pepparse.Downloader = (*Downloader)(nil)
)

// Fetcher is a mock implementation of pepparse.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*pepparse.Page, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*pepparse.Page, error) {
	return f.FetchFn(ctx, url)
}

// Downloader is a mock implementation of pepparse.Downloader.
type Downloader struct {
	DownloadFn func(ctx context.Context, url string) ([]byte, error)
}

func (d *Downloader) Download(ctx context.Context, url string) ([]byte, error) {
	return d.DownloadFn(ctx, url)
}
