package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pepparse"
)

var _ pepparse.ResponseCache = (*LoggingCache)(nil)

// LoggingCache wraps a ResponseCache with debug logging.
type LoggingCache struct {
	next   pepparse.ResponseCache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next pepparse.ResponseCache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// FindResponse delegates to the wrapped cache and logs hits and misses.
func (c *LoggingCache) FindResponse(ctx context.Context, url string) (resp *pepparse.Response, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url, "hit", err == nil, "duration", time.Since(begin)}
		if err != nil && pepparse.ErrorCode(err) != pepparse.ENOTFOUND {
			attrs = append(attrs, "err", err)
		}
		c.logger.Debug("cache lookup", attrs...)
	}(time.Now())
	return c.next.FindResponse(ctx, url)
}

// SaveResponse delegates to the wrapped cache and logs the operation.
func (c *LoggingCache) SaveResponse(ctx context.Context, resp *pepparse.Response) (err error) {
	defer func(begin time.Time) {
		c.logger.Debug("cache save",
			"url", resp.URL,
			"bytes", len(resp.Body),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.SaveResponse(ctx, resp)
}

// Clear delegates to the wrapped cache and logs the operation.
func (c *LoggingCache) Clear(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache cleared",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Clear(ctx)
}
