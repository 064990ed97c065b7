package main

import "time"

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Mode       string        `arg:"" required:"" enum:"whats-new,latest-versions,download,pep" help:"Parser mode: ${enum}."`
	ClearCache bool          `short:"c" help:"Clear the HTTP cache before running."`
	Output     string        `short:"o" enum:"lines,pretty,file" default:"lines" help:"Result output: ${enum}."`
	Dir        string        `default:"." env:"PEPPARSE_DIR" help:"Base directory for logs, results and downloads."`
	Cache      string        `env:"PEPPARSE_CACHE" help:"Path of the HTTP cache database (default: XDG cache directory)."`
	DocsURL    string        `name:"docs-url" default:"https://docs.python.org/3/" env:"PEPPARSE_DOCS_URL" help:"Root of the Python documentation."`
	PEPsURL    string        `name:"peps-url" default:"https://peps.python.org/" env:"PEPPARSE_PEPS_URL" help:"Root of the PEP index."`
	Timeout    time.Duration `default:"30s" help:"Timeout per request."`
}
