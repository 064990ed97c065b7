package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/pepparse"
	"github.com/fwojciec/pepparse/mock"
	pepslog "github.com/fwojciec/pepparse/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*pepparse.Page, error) {
				return &pepparse.Page{URL: url, StatusCode: 200, Text: "<html>content</html>", Encoding: "utf-8", FromCache: true}, nil
			},
		}

		fetcher := pepslog.NewLoggingFetcher(inner, logger)
		page, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", page.Text)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "url=https://example.com/docs")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "cached=true")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "duration=")
		assert.NotContains(t, output, "stack=")
	})

	t.Run("logs error with stack trace on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*pepparse.Page, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := pepslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/docs")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "err=\"network error\"")
		assert.Contains(t, output, "stack=")
	})
}

func TestLoggingDownloader_Download(t *testing.T) {
	t.Parallel()

	t.Run("logs download size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Downloader{
			DownloadFn: func(ctx context.Context, url string) ([]byte, error) {
				return []byte("PK\x03\x04"), nil
			},
		}

		data, err := pepslog.NewLoggingDownloader(inner, logger).Download(context.Background(), "https://example.com/a.zip")

		require.NoError(t, err)
		assert.Len(t, data, 4)
		assert.Contains(t, buf.String(), "msg=download")
		assert.Contains(t, buf.String(), "bytes=4")
	})

	t.Run("returns the wrapped error unchanged", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Downloader{
			DownloadFn: func(ctx context.Context, url string) ([]byte, error) {
				return nil, pepparse.Errorf(pepparse.EUNAVAILABLE, "HTTP 503")
			},
		}

		_, err := pepslog.NewLoggingDownloader(inner, logger).Download(context.Background(), "https://example.com/a.zip")

		assert.Equal(t, pepparse.EUNAVAILABLE, pepparse.ErrorCode(err))
		assert.Contains(t, buf.String(), "stack=")
	})
}
