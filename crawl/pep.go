package crawl

import (
	"context"

	"github.com/fwojciec/pepparse"
)

// PEP counts PEPs by the status shown on their own pages. Statuses that
// disagree with the index are logged once the crawl is complete; they are
// never errors. PEPs whose page is unavailable are skipped.
func (c *Crawler) PEP(ctx context.Context) (*pepparse.ResultSet, error) {
	indexURL := c.pepsURL()

	page, out, err := c.fetch(ctx, indexURL, abortRun)
	if err != nil {
		return nil, err
	} else if out == abortRun {
		return nil, nil
	}

	entries, err := c.Markup.PEPIndex(page)
	if err != nil {
		return nil, wrap(indexURL, err)
	}

	census := pepparse.NewStatusCensus()
	for i, entry := range entries {
		link, err := resolveURL(indexURL, entry.Href)
		if err != nil {
			return nil, err
		}
		if err := c.recordPEP(ctx, link, entry.PreviewCode, census); err != nil {
			return nil, err
		}
		c.report(pepparse.ModePEP, link, i+1, len(entries))
	}

	for _, msg := range census.Mismatches() {
		c.logger().Info(msg)
	}

	return census.ResultSet(), nil
}

func (c *Crawler) recordPEP(ctx context.Context, link, previewCode string, census *pepparse.StatusCensus) error {
	page, out, err := c.fetch(ctx, link, skipItem)
	if err != nil {
		return err
	} else if out == skipItem {
		return nil
	}

	status, err := c.Markup.PEPStatus(page)
	if err != nil {
		return wrap(link, err)
	}
	if err := census.Record(link, previewCode, status); err != nil {
		return wrap(link, err)
	}
	return nil
}
