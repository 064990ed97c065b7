package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/pepparse"
	"github.com/fwojciec/pepparse/mock"
	pepslog "github.com/fwojciec/pepparse/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCache(t *testing.T) {
	t.Parallel()

	newLogger := func(buf *bytes.Buffer) *slog.Logger {
		return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	t.Run("logs a miss without an error attribute", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ResponseCache{
			FindResponseFn: func(ctx context.Context, url string) (*pepparse.Response, error) {
				return nil, pepparse.Errorf(pepparse.ENOTFOUND, "no cached response")
			},
		}

		_, err := pepslog.NewLoggingCache(inner, newLogger(&buf)).FindResponse(context.Background(), "https://example.com/")

		assert.Equal(t, pepparse.ENOTFOUND, pepparse.ErrorCode(err))
		assert.Contains(t, buf.String(), `msg="cache lookup"`)
		assert.Contains(t, buf.String(), "hit=false")
		assert.NotContains(t, buf.String(), "err=")
	})

	t.Run("logs saves and clears", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		var cleared bool
		inner := &mock.ResponseCache{
			SaveResponseFn: func(ctx context.Context, resp *pepparse.Response) error { return nil },
			ClearFn: func(ctx context.Context) error {
				cleared = true
				return nil
			},
		}
		cache := pepslog.NewLoggingCache(inner, newLogger(&buf))

		require.NoError(t, cache.SaveResponse(context.Background(), &pepparse.Response{URL: "https://example.com/", Body: []byte("abc")}))
		require.NoError(t, cache.Clear(context.Background()))

		assert.True(t, cleared)
		assert.Contains(t, buf.String(), `msg="cache save"`)
		assert.Contains(t, buf.String(), "bytes=3")
		assert.Contains(t, buf.String(), `msg="cache cleared"`)
	})
}
