// Package crawl implements the pepparse crawl modes. Each mode fetches an
// index page, locates the items it links to and, where needed, follows
// every item to its own page. Crawls are strictly sequential.
package crawl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/pepparse"
)

// Crawler runs the crawl modes against the Python documentation sites.
type Crawler struct {
	Fetcher    pepparse.Fetcher
	Downloader pepparse.Downloader
	Markup     pepparse.Markup
	Archives   pepparse.ArchiveStore
	Logger     *slog.Logger

	// Progress, if set, is called after each item of an index is processed.
	Progress pepparse.ProgressFunc

	// Site roots. Default to pepparse.DefaultDocsURL and pepparse.DefaultPEPsURL.
	DocsURL string
	PEPsURL string
}

// Run executes the crawl selected by mode. A nil result set without error
// means the mode produced no results: either its index page was
// unavailable or the mode only has side effects (download).
func (c *Crawler) Run(ctx context.Context, mode pepparse.Mode) (*pepparse.ResultSet, error) {
	switch mode {
	case pepparse.ModeWhatsNew:
		return c.WhatsNew(ctx)
	case pepparse.ModeLatestVersions:
		return c.LatestVersions(ctx)
	case pepparse.ModeDownload:
		return nil, c.Download(ctx)
	case pepparse.ModePEP:
		return c.PEP(ctx)
	default:
		return nil, pepparse.Errorf(pepparse.EINVALID, "unknown mode %q", mode)
	}
}

// outcome classifies a fetch attempt at a given call site.
type outcome int

const (
	// fetched means the page is available.
	fetched outcome = iota

	// abortRun means an index page was unavailable; the mode ends with no results.
	abortRun

	// skipItem means an item page was unavailable; the crawl moves on.
	skipItem
)

// fetch retrieves url. An unavailable page is not an error: it yields
// onUnavailable so the caller decides between aborting and skipping.
// Any other failure is returned as an error.
func (c *Crawler) fetch(ctx context.Context, url string, onUnavailable outcome) (*pepparse.Page, outcome, error) {
	page, err := c.Fetcher.Fetch(ctx, url)
	if pepparse.ErrorCode(err) == pepparse.EUNAVAILABLE {
		if onUnavailable == abortRun {
			c.logger().Warn("index page unavailable, no results", "url", url)
		} else {
			c.logger().Warn("page unavailable, skipping", "url", url)
		}
		return nil, onUnavailable, nil
	} else if err != nil {
		return nil, fetched, err
	}
	return page, fetched, nil
}

func (c *Crawler) report(mode pepparse.Mode, url string, completed, total int) {
	if c.Progress == nil {
		return
	}
	c.Progress(pepparse.Progress{
		Mode:      mode,
		URL:       url,
		Completed: completed,
		Total:     total,
	})
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

func (c *Crawler) docsURL() string {
	if c.DocsURL == "" {
		return pepparse.DefaultDocsURL
	}
	return c.DocsURL
}

func (c *Crawler) pepsURL() string {
	if c.PEPsURL == "" {
		return pepparse.DefaultPEPsURL
	}
	return c.PEPsURL
}

// wrap adds the page URL to err while keeping its code reachable.
func wrap(url string, err error) error {
	return fmt.Errorf("%s: %w", url, err)
}
