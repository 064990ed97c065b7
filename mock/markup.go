package mock

import "github.com/fwojciec/pepparse"

var _ pepparse.Markup = (*Markup)(nil)

// Markup is a mock implementation of pepparse.Markup.
type Markup struct {
	WhatsNewLinksFn func(page *pepparse.Page) ([]string, error)
	WhatsNewEntryFn func(page *pepparse.Page) (*pepparse.WhatsNewEntry, error)
	VersionLinksFn  func(page *pepparse.Page) ([]pepparse.Link, error)
	ArchiveLinkFn   func(page *pepparse.Page) (string, error)
	PEPIndexFn      func(page *pepparse.Page) ([]pepparse.PEPIndexEntry, error)
	PEPStatusFn     func(page *pepparse.Page) (string, error)
}

func (m *Markup) WhatsNewLinks(page *pepparse.Page) ([]string, error) {
	return m.WhatsNewLinksFn(page)
}

func (m *Markup) WhatsNewEntry(page *pepparse.Page) (*pepparse.WhatsNewEntry, error) {
	return m.WhatsNewEntryFn(page)
}

func (m *Markup) VersionLinks(page *pepparse.Page) ([]pepparse.Link, error) {
	return m.VersionLinksFn(page)
}

func (m *Markup) ArchiveLink(page *pepparse.Page) (string, error) {
	return m.ArchiveLinkFn(page)
}

func (m *Markup) PEPIndex(page *pepparse.Page) ([]pepparse.PEPIndexEntry, error) {
	return m.PEPIndexFn(page)
}

func (m *Markup) PEPStatus(page *pepparse.Page) (string, error) {
	return m.PEPStatusFn(page)
}
