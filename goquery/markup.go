package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pepparse"
)

// Markers the Python documentation sites are located by.
const (
	allVersionsMarker = "All versions"
	archiveSuffix     = "pdf-a4.zip"
	statusMarker      = "Status"
)

var _ pepparse.Markup = (*Markup)(nil)

// Markup implements pepparse.Markup for docs.python.org and
// peps.python.org. Both are Sphinx builds; the selectors below match their
// current themes.
type Markup struct{}

// NewMarkup creates a new Markup.
func NewMarkup() *Markup {
	return &Markup{}
}

// WhatsNewLinks returns the article hrefs from the "What's New" index.
func (m *Markup) WhatsNewLinks(page *pepparse.Page) ([]string, error) {
	doc, err := parse(page)
	if err != nil {
		return nil, err
	}

	section, err := Find(doc.Selection, "section", HasAttr("id", "what-s-new-in-python"))
	if err != nil {
		return nil, err
	}
	wrapper, err := Find(section, "div", HasAttr("class", "toctree-wrapper"))
	if err != nil {
		return nil, err
	}

	var hrefs []string
	for _, li := range wrapper.Find("li.toctree-l1").EachIter() {
		a, err := Find(li, "a")
		if err != nil {
			return nil, err
		}
		href, err := requireHref(a)
		if err != nil {
			return nil, err
		}
		hrefs = append(hrefs, href)
	}
	return hrefs, nil
}

// WhatsNewEntry returns the article heading and its author block.
func (m *Markup) WhatsNewEntry(page *pepparse.Page) (*pepparse.WhatsNewEntry, error) {
	doc, err := parse(page)
	if err != nil {
		return nil, err
	}

	h1, err := Find(doc.Selection, "h1")
	if err != nil {
		return nil, err
	}
	dl, err := Find(doc.Selection, "dl")
	if err != nil {
		return nil, err
	}

	return &pepparse.WhatsNewEntry{
		Title:   h1.Text(),
		Editors: strings.ReplaceAll(dl.Text(), "\n", " "),
	}, nil
}

// VersionLinks returns the links of the first sidebar list containing
// "All versions". Returns ENOTFOUND only after every list was checked.
func (m *Markup) VersionLinks(page *pepparse.Page) ([]pepparse.Link, error) {
	doc, err := parse(page)
	if err != nil {
		return nil, err
	}

	sidebar, err := Find(doc.Selection, "div", HasAttr("class", "sphinxsidebarwrapper"))
	if err != nil {
		return nil, err
	}

	var versions *goquery.Selection
	for _, ul := range sidebar.Find("ul").EachIter() {
		if strings.Contains(ul.Text(), allVersionsMarker) {
			versions = ul
			break
		}
	}
	if versions == nil {
		return nil, pepparse.Errorf(pepparse.ENOTFOUND, "no sidebar list containing %q", allVersionsMarker)
	}

	var links []pepparse.Link
	for _, a := range versions.Find("a").EachIter() {
		href, err := requireHref(a)
		if err != nil {
			return nil, err
		}
		links = append(links, pepparse.Link{Href: href, Text: a.Text()})
	}
	return links, nil
}

// ArchiveLink returns the href of the A4 PDF documentation archive.
func (m *Markup) ArchiveLink(page *pepparse.Page) (string, error) {
	doc, err := parse(page)
	if err != nil {
		return "", err
	}

	content, err := Find(doc.Selection, "div", HasAttr("role", "main"))
	if err != nil {
		return "", err
	}
	table, err := Find(content, "table", HasAttr("class", "docutils"))
	if err != nil {
		return "", err
	}
	a, err := Find(table, "a", HasSuffix("href", archiveSuffix))
	if err != nil {
		return "", err
	}
	return a.AttrOr("href", ""), nil
}

// PEPIndex returns every row of the numerical PEP index in document order.
func (m *Markup) PEPIndex(page *pepparse.Page) ([]pepparse.PEPIndexEntry, error) {
	doc, err := parse(page)
	if err != nil {
		return nil, err
	}

	section, err := Find(doc.Selection, "section", HasAttr("id", "numerical-index"))
	if err != nil {
		return nil, err
	}
	tbody, err := Find(section, "tbody")
	if err != nil {
		return nil, err
	}

	var entries []pepparse.PEPIndexEntry
	for _, tr := range tbody.Find("tr").EachIter() {
		abbr, err := Find(tr, "abbr")
		if err != nil {
			return nil, err
		}
		a, err := Find(tr, "a")
		if err != nil {
			return nil, err
		}
		href, err := requireHref(a)
		if err != nil {
			return nil, err
		}
		entries = append(entries, pepparse.PEPIndexEntry{
			PreviewCode: previewCode(abbr.Text()),
			Href:        href,
		})
	}
	return entries, nil
}

// PEPStatus returns the status from the header field list of a PEP page.
func (m *Markup) PEPStatus(page *pepparse.Page) (string, error) {
	doc, err := parse(page)
	if err != nil {
		return "", err
	}

	dt, err := FindByText(doc.Selection, "dt", statusMarker)
	if err != nil {
		return "", err
	}
	abbr, err := Find(dt.Next(), "abbr")
	if err != nil {
		return "", err
	}
	return abbr.Text(), nil
}

func parse(page *pepparse.Page) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.Text))
	if err != nil {
		return nil, pepparse.Errorf(pepparse.EINVALID, "failed to parse HTML of %s: %v", page.URL, err)
	}
	return doc, nil
}

func requireHref(a *goquery.Selection) (string, error) {
	href, ok := a.Attr("href")
	if !ok {
		return "", pepparse.Errorf(pepparse.ENOTFOUND, "attribute href not found on link %q", strings.TrimSpace(a.Text()))
	}
	return href, nil
}

// previewCode drops the leading PEP type marker from an index abbreviation,
// e.g. "SF" becomes "F" and "I" becomes "".
func previewCode(abbr string) string {
	runes := []rune(abbr)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[1:])
}
