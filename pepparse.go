// Package pepparse extracts Python release and PEP metadata from the
// official documentation sites. It crawls a small fixed set of pages
// through a persistent response cache, locates the structural elements it
// needs in their markup, and reconciles PEP statuses between the index and
// the individual PEP pages.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gopretty/).
package pepparse
