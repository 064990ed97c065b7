package crawl

import (
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/fwojciec/pepparse"
)

// Download saves the A4 PDF archive of the documentation through the
// ArchiveStore. It produces no result set.
func (c *Crawler) Download(ctx context.Context) error {
	downloadsURL, err := resolveURL(c.docsURL(), "download.html")
	if err != nil {
		return err
	}

	page, out, err := c.fetch(ctx, downloadsURL, abortRun)
	if err != nil {
		return err
	} else if out == abortRun {
		return nil
	}

	href, err := c.Markup.ArchiveLink(page)
	if err != nil {
		return wrap(downloadsURL, err)
	}

	archiveURL, err := resolveURL(downloadsURL, href)
	if err != nil {
		return err
	}
	name, err := fileName(archiveURL)
	if err != nil {
		return err
	}

	data, err := c.Downloader.Download(ctx, archiveURL)
	if err != nil {
		return fmt.Errorf("downloading archive: %w", err)
	}

	archivePath, err := c.Archives.SaveArchive(ctx, name, data)
	if err != nil {
		return fmt.Errorf("saving archive: %w", err)
	}
	c.logger().Info("archive downloaded", "url", archiveURL, "path", archivePath, "bytes", len(data))
	return nil
}

// fileName returns the final path segment of rawURL.
func fileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pepparse.Errorf(pepparse.EINVALID, "invalid archive URL %q: %v", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return "", pepparse.Errorf(pepparse.EINVALID, "archive URL %q has no file name", rawURL)
	}
	return name, nil
}

// resolveURL resolves href against base.
func resolveURL(base, href string) (string, error) {
	b, err := url.Parse(base)
	if err != nil {
		return "", pepparse.Errorf(pepparse.EINVALID, "invalid base URL %q: %v", base, err)
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", pepparse.Errorf(pepparse.EINVALID, "invalid link %q: %v", href, err)
	}
	return b.ResolveReference(ref).String(), nil
}
