package pepparse

// Link is an anchor found in a page.
type Link struct {
	Href string
	Text string
}

// WhatsNewEntry is the summary of one "What's New" article.
type WhatsNewEntry struct {
	Title   string
	Editors string // Definition list text with newlines flattened to spaces
}

// PEPIndexEntry is one row of the PEP numerical index.
type PEPIndexEntry struct {
	// PreviewCode is the status letter shown in the index
	// (the abbreviation text without its leading type marker).
	PreviewCode string
	Href        string
}

// Markup locates the elements each crawl needs inside fetched pages.
// Every method returns ENOTFOUND when a required element is missing.
type Markup interface {
	// WhatsNewLinks returns the article hrefs listed on the "What's New" index.
	WhatsNewLinks(page *Page) ([]string, error)

	// WhatsNewEntry returns the title and author block of an article.
	WhatsNewEntry(page *Page) (*WhatsNewEntry, error)

	// VersionLinks returns the links of the "All versions" sidebar list.
	VersionLinks(page *Page) ([]Link, error)

	// ArchiveLink returns the href of the A4 PDF archive on the download page.
	ArchiveLink(page *Page) (string, error)

	// PEPIndex returns the rows of the numerical PEP index.
	PEPIndex(page *Page) ([]PEPIndexEntry, error)

	// PEPStatus returns the status shown on a PEP's own page.
	PEPStatus(page *Page) (string, error)
}
