package pepparse

// Mode selects one crawl.
type Mode string

// Supported crawl modes.
const (
	ModeWhatsNew       Mode = "whats-new"
	ModeLatestVersions Mode = "latest-versions"
	ModeDownload       Mode = "download"
	ModePEP            Mode = "pep"
)

// Modes returns every supported mode in a stable order.
func Modes() []Mode {
	return []Mode{ModeWhatsNew, ModeLatestVersions, ModeDownload, ModePEP}
}

// ParseMode returns the mode named s.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", Errorf(EINVALID, "unknown mode %q", s)
}

// OutputType selects how results are rendered.
type OutputType string

// Supported output types.
const (
	OutputLines  OutputType = "lines"
	OutputPretty OutputType = "pretty"
	OutputFile   OutputType = "file"
)

// Default documentation roots.
const (
	DefaultDocsURL = "https://docs.python.org/3/"
	DefaultPEPsURL = "https://peps.python.org/"
)
