package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/fwojciec/pepparse"
)

// Compile-time interface verification.
var _ pepparse.ResponseCache = (*ResponseCache)(nil)

// ResponseCache implements pepparse.ResponseCache using SQLite.
// Entries never expire; they live until Clear is called or the database
// file is removed.
type ResponseCache struct {
	db *DB
}

// NewResponseCache creates a new ResponseCache.
func NewResponseCache(db *DB) *ResponseCache {
	return &ResponseCache{db: db}
}

// FindResponse returns the stored response for url.
func (c *ResponseCache) FindResponse(ctx context.Context, url string) (*pepparse.Response, error) {
	var resp pepparse.Response
	var createdAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT url, status_code, body, created_at
		FROM responses
		WHERE key = ?
	`, responseKey(url)).Scan(&resp.URL, &resp.StatusCode, &resp.Body, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pepparse.Errorf(pepparse.ENOTFOUND, "no cached response for %s", url)
	}
	if err != nil {
		return nil, err
	}

	resp.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &resp, nil
}

// SaveResponse stores resp, replacing any previous entry for the same URL.
func (c *ResponseCache) SaveResponse(ctx context.Context, resp *pepparse.Response) error {
	if err := resp.Validate(); err != nil {
		return err
	}

	if resp.CreatedAt.IsZero() {
		resp.CreatedAt = time.Now().UTC()
	}
	body := resp.Body
	if body == nil {
		body = []byte{}
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO responses (key, url, status_code, body, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			url = excluded.url,
			status_code = excluded.status_code,
			body = excluded.body,
			created_at = excluded.created_at
	`, responseKey(resp.URL), resp.URL, resp.StatusCode, body, resp.CreatedAt.Format(time.RFC3339))

	return err
}

// Clear removes every stored response.
func (c *ResponseCache) Clear(ctx context.Context) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM responses`)
	return err
}

// Count returns the number of stored responses.
func (c *ResponseCache) Count(ctx context.Context) (int, error) {
	var n int
	err := c.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM responses`).Scan(&n)
	return n, err
}
