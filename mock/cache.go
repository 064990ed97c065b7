package mock

import (
	"context"

	"github.com/fwojciec/pepparse"
)

var _ pepparse.ResponseCache = (*ResponseCache)(nil)

// ResponseCache is a mock implementation of pepparse.ResponseCache.
type ResponseCache struct {
	FindResponseFn func(ctx context.Context, url string) (*pepparse.Response, error)
	SaveResponseFn func(ctx context.Context, resp *pepparse.Response) error
	ClearFn        func(ctx context.Context) error
}

func (c *ResponseCache) FindResponse(ctx context.Context, url string) (*pepparse.Response, error) {
	return c.FindResponseFn(ctx, url)
}

func (c *ResponseCache) SaveResponse(ctx context.Context, resp *pepparse.Response) error {
	return c.SaveResponseFn(ctx, resp)
}

func (c *ResponseCache) Clear(ctx context.Context) error {
	return c.ClearFn(ctx)
}
