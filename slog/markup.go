package slog

import (
	"log/slog"
	"runtime/debug"

	"github.com/fwojciec/pepparse"
)

var _ pepparse.Markup = (*LoggingMarkup)(nil)

// LoggingMarkup wraps a Markup and logs every lookup failure with a stack
// trace. Missing elements are logged as "tag not found". Errors are
// returned unchanged.
type LoggingMarkup struct {
	next   pepparse.Markup
	logger *slog.Logger
}

// NewLoggingMarkup creates a new LoggingMarkup.
func NewLoggingMarkup(next pepparse.Markup, logger *slog.Logger) *LoggingMarkup {
	return &LoggingMarkup{next: next, logger: logger}
}

// WhatsNewLinks delegates to the wrapped markup and logs failures.
func (m *LoggingMarkup) WhatsNewLinks(page *pepparse.Page) ([]string, error) {
	hrefs, err := m.next.WhatsNewLinks(page)
	m.logFailure("whats-new links", page, err)
	return hrefs, err
}

// WhatsNewEntry delegates to the wrapped markup and logs failures.
func (m *LoggingMarkup) WhatsNewEntry(page *pepparse.Page) (*pepparse.WhatsNewEntry, error) {
	entry, err := m.next.WhatsNewEntry(page)
	m.logFailure("whats-new entry", page, err)
	return entry, err
}

// VersionLinks delegates to the wrapped markup and logs failures.
func (m *LoggingMarkup) VersionLinks(page *pepparse.Page) ([]pepparse.Link, error) {
	links, err := m.next.VersionLinks(page)
	m.logFailure("version links", page, err)
	return links, err
}

// ArchiveLink delegates to the wrapped markup and logs failures.
func (m *LoggingMarkup) ArchiveLink(page *pepparse.Page) (string, error) {
	href, err := m.next.ArchiveLink(page)
	m.logFailure("archive link", page, err)
	return href, err
}

// PEPIndex delegates to the wrapped markup and logs failures.
func (m *LoggingMarkup) PEPIndex(page *pepparse.Page) ([]pepparse.PEPIndexEntry, error) {
	entries, err := m.next.PEPIndex(page)
	m.logFailure("pep index", page, err)
	return entries, err
}

// PEPStatus delegates to the wrapped markup and logs failures.
func (m *LoggingMarkup) PEPStatus(page *pepparse.Page) (string, error) {
	status, err := m.next.PEPStatus(page)
	m.logFailure("pep status", page, err)
	return status, err
}

func (m *LoggingMarkup) logFailure(lookup string, page *pepparse.Page, err error) {
	if err == nil {
		return
	}
	msg := "markup lookup failed"
	if pepparse.ErrorCode(err) == pepparse.ENOTFOUND {
		msg = "tag not found"
	}
	m.logger.Error(msg,
		"lookup", lookup,
		"url", page.URL,
		"err", pepparse.ErrorMessage(err),
		"stack", string(debug.Stack()),
	)
}
