package crawl

import (
	"context"

	"github.com/fwojciec/pepparse"
)

// LatestVersions lists the documentation versions linked from the sidebar
// of the documentation root, with the status of each release.
func (c *Crawler) LatestVersions(ctx context.Context) (*pepparse.ResultSet, error) {
	rootURL := c.docsURL()

	page, out, err := c.fetch(ctx, rootURL, abortRun)
	if err != nil {
		return nil, err
	} else if out == abortRun {
		return nil, nil
	}

	links, err := c.Markup.VersionLinks(page)
	if err != nil {
		return nil, wrap(rootURL, err)
	}

	results := pepparse.NewResultSet("Documentation link", "Version", "Status")
	for _, link := range links {
		vs, ok := pepparse.ParseVersionStatus(link.Text)
		if !ok {
			vs = pepparse.VersionStatus{Version: link.Text}
		}
		results.Append(link.Href, vs.Version, vs.Status)
	}
	return results, nil
}
