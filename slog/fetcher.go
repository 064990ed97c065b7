// Package slog provides logging decorators for pepparse services.
package slog

import (
	"context"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/fwojciec/pepparse"
)

var (
	_ pepparse.Fetcher    = (*LoggingFetcher)(nil)
	_ pepparse.Downloader = (*LoggingDownloader)(nil)
)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   pepparse.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next pepparse.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
// Failures are logged at error level with a stack trace.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *pepparse.Page, err error) {
	defer func(begin time.Time) {
		if err != nil {
			f.logger.Error("fetch",
				"url", url,
				"duration", time.Since(begin),
				"err", err,
				"stack", string(debug.Stack()),
			)
			return
		}
		f.logger.Info("fetch",
			"url", url,
			"status", page.StatusCode,
			"bytes", len(page.Text),
			"cached", page.FromCache,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// LoggingDownloader wraps a Downloader with logging.
type LoggingDownloader struct {
	next   pepparse.Downloader
	logger *slog.Logger
}

// NewLoggingDownloader creates a new LoggingDownloader.
func NewLoggingDownloader(next pepparse.Downloader, logger *slog.Logger) *LoggingDownloader {
	return &LoggingDownloader{next: next, logger: logger}
}

// Download delegates to the wrapped downloader and logs the operation.
func (d *LoggingDownloader) Download(ctx context.Context, url string) (data []byte, err error) {
	defer func(begin time.Time) {
		if err != nil {
			d.logger.Error("download",
				"url", url,
				"duration", time.Since(begin),
				"err", err,
				"stack", string(debug.Stack()),
			)
			return
		}
		d.logger.Info("download",
			"url", url,
			"bytes", len(data),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return d.next.Download(ctx, url)
}
