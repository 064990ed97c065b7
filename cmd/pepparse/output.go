package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/fwojciec/pepparse"
)

var _ pepparse.Sink = (*LineSink)(nil)

// LineSink writes every row, header first, as space-separated columns.
type LineSink struct {
	w io.Writer
}

// NewLineSink creates a new LineSink writing to w.
func NewLineSink(w io.Writer) *LineSink {
	return &LineSink{w: w}
}

func (s *LineSink) WriteResults(ctx context.Context, mode pepparse.Mode, results *pepparse.ResultSet) error {
	for _, row := range results.All() {
		if _, err := fmt.Fprintln(s.w, strings.Join(row, " ")); err != nil {
			return err
		}
	}
	return nil
}

// progressLine prints crawl progress on a single terminal line.
type progressLine struct {
	w       io.Writer
	printed bool
}

func newProgressLine(w io.Writer) *progressLine {
	return &progressLine{w: w}
}

// Report overwrites the line with p.
func (l *progressLine) Report(p pepparse.Progress) {
	fmt.Fprintf(l.w, "\r[%d/%d] %s", p.Completed, p.Total, truncateURL(p.URL, 40))
	l.printed = true
}

// Clear blanks the line if anything was reported.
func (l *progressLine) Clear() {
	if !l.printed {
		return
	}
	fmt.Fprintf(l.w, "\r%80s\r", "")
	l.printed = false
}

// truncateURL shortens a URL for display by showing only the path.
func truncateURL(rawURL string, maxLen int) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		if len(rawURL) <= maxLen {
			return rawURL
		}
		return rawURL[:maxLen-3] + "..."
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}

	if len(path) <= maxLen {
		return path
	}

	// Keep the unique suffix.
	return "..." + path[len(path)-maxLen+3:]
}
