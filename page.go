package pepparse

import (
	"context"
	"time"
)

// Page represents a fetched documentation page.
// A Page is never modified after the fetch that produced it.
type Page struct {
	URL        string
	StatusCode int
	Text       string // Markup decoded as Encoding
	Encoding   string
	FromCache  bool
}

// Response is a stored HTTP response.
type Response struct {
	URL        string    `json:"url"`
	StatusCode int       `json:"statusCode"`
	Body       []byte    `json:"body"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Validate returns an error if the response contains invalid fields.
func (r *Response) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "response URL required")
	}
	return nil
}

// ResponseCache is a persistent store of responses shared by every fetch
// of a run and across runs.
type ResponseCache interface {
	// FindResponse returns the stored response for url.
	// Returns ENOTFOUND if nothing is stored.
	FindResponse(ctx context.Context, url string) (*Response, error)

	// SaveResponse stores resp, replacing any previous entry for its URL.
	SaveResponse(ctx context.Context, resp *Response) error

	// Clear removes every stored response.
	Clear(ctx context.Context) error
}

// ArchiveStore persists downloaded archives.
type ArchiveStore interface {
	// SaveArchive writes data under name and returns the resulting path.
	SaveArchive(ctx context.Context, name string, data []byte) (path string, err error)
}

// Progress reports progress through the items of a crawl.
type Progress struct {
	Mode      Mode
	URL       string
	Completed int
	Total     int
}

// ProgressFunc is called once per processed item.
type ProgressFunc func(Progress)
