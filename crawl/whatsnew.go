package crawl

import (
	"context"

	"github.com/fwojciec/pepparse"
)

// WhatsNew lists the "What's New" articles with their titles and authors.
// Articles whose page is unavailable are skipped.
func (c *Crawler) WhatsNew(ctx context.Context) (*pepparse.ResultSet, error) {
	indexURL, err := resolveURL(c.docsURL(), "whatsnew/")
	if err != nil {
		return nil, err
	}

	page, out, err := c.fetch(ctx, indexURL, abortRun)
	if err != nil {
		return nil, err
	} else if out == abortRun {
		return nil, nil
	}

	hrefs, err := c.Markup.WhatsNewLinks(page)
	if err != nil {
		return nil, wrap(indexURL, err)
	}

	results := pepparse.NewResultSet("Link", "Title", "Editor, Author")
	for i, href := range hrefs {
		link, err := resolveURL(indexURL, href)
		if err != nil {
			return nil, err
		}
		if err := c.whatsNewEntry(ctx, link, results); err != nil {
			return nil, err
		}
		c.report(pepparse.ModeWhatsNew, link, i+1, len(hrefs))
	}
	return results, nil
}

func (c *Crawler) whatsNewEntry(ctx context.Context, link string, results *pepparse.ResultSet) error {
	page, out, err := c.fetch(ctx, link, skipItem)
	if err != nil {
		return err
	} else if out == skipItem {
		return nil
	}

	entry, err := c.Markup.WhatsNewEntry(page)
	if err != nil {
		return wrap(link, err)
	}
	results.Append(link, entry.Title, entry.Editors)
	return nil
}
