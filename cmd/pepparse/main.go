package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/alecthomas/kong"
	"github.com/fwojciec/pepparse"
	"github.com/fwojciec/pepparse/crawl"
	"github.com/fwojciec/pepparse/fs"
	"github.com/fwojciec/pepparse/gopretty"
	"github.com/fwojciec/pepparse/goquery"
	pephttp "github.com/fwojciec/pepparse/http"
	pepslog "github.com/fwojciec/pepparse/slog"
	"github.com/fwojciec/pepparse/sqlite"
	"github.com/joho/godotenv"
)

// AppName names the cache directory and the program in help output.
const AppName = "pepparse"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Environment file loaded before flags are parsed. Empty disables it.
	EnvFile string

	// Base directory used for the log file when the arguments cannot be
	// parsed. PEPPARSE_DIR takes precedence.
	DefaultDir string

	// SQLite database holding the HTTP response cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{EnvFile: ".env", DefaultDir: "."}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	if err := m.loadEnv(); err != nil {
		return err
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name(AppName),
		kong.Description("Collect metadata from the Python documentation and PEP index"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	var parseErr error
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		parseErr = fmt.Errorf("no mode specified. Run '%s --help' to see available modes", AppName)
	} else {
		_, parseErr = parser.Parse(args)
	}

	dir := cli.Dir
	if parseErr != nil || dir == "" {
		dir = m.defaultDir()
	}
	logger, logFile := newLogger(dir, stderr)
	defer logFile.Close()

	logger.Info("parser started")
	logger.Info("arguments",
		"args", args,
		"mode", cli.Mode,
		"clear_cache", cli.ClearCache,
		"output", cli.Output,
	)
	defer func() {
		if err != nil {
			logger.Error("parser finished", "err", err)
			return
		}
		logger.Info("parser finished")
	}()

	if parseErr != nil {
		return parseErr
	}

	mode, err := pepparse.ParseMode(cli.Mode)
	if err != nil {
		return err
	}

	cachePath := cli.Cache
	if cachePath == "" {
		cachePath = defaultCachePath()
	}
	m.DB = sqlite.NewDB(cachePath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set PEPPARSE_CACHE to use a different cache path\n")
		return fmt.Errorf("failed to open cache at %q: %w", m.DB.Path(), err)
	}
	defer m.Close()
	logger.Info("cache opened", "path", m.DB.Path(), "clear", cli.ClearCache)

	cache := pepslog.NewLoggingCache(sqlite.NewResponseCache(m.DB), logger)
	if cli.ClearCache {
		if err := cache.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
	}

	httpFetcher := pephttp.NewFetcher(
		pephttp.WithTimeout(cli.Timeout),
		pephttp.WithCache(cache),
	)

	progress := newProgressLine(stderr)
	crawler := &crawl.Crawler{
		Fetcher:    pepslog.NewLoggingFetcher(httpFetcher, logger),
		Downloader: pepslog.NewLoggingDownloader(httpFetcher, logger),
		Markup:     pepslog.NewLoggingMarkup(goquery.NewMarkup(), logger),
		Archives:   fs.NewArchiveStore(cli.Dir),
		Logger:     logger,
		Progress:   progress.Report,
		DocsURL:    cli.DocsURL,
		PEPsURL:    cli.PEPsURL,
	}

	results, err := crawler.Run(ctx, mode)
	progress.Clear()
	if err != nil {
		return err
	} else if results == nil {
		return nil
	}

	sink, err := newSink(pepparse.OutputType(cli.Output), cli.Dir, stdout, logger)
	if err != nil {
		return err
	}
	return sink.WriteResults(ctx, mode, results)
}

func (m *Main) loadEnv() error {
	if m.EnvFile == "" {
		return nil
	}
	if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
	}
	return nil
}

func (m *Main) defaultDir() string {
	if dir := os.Getenv("PEPPARSE_DIR"); dir != "" {
		return dir
	}
	if m.DefaultDir == "" {
		return "."
	}
	return m.DefaultDir
}

func newSink(output pepparse.OutputType, dir string, stdout io.Writer, logger *slog.Logger) (pepparse.Sink, error) {
	switch output {
	case pepparse.OutputLines, "":
		return NewLineSink(stdout), nil
	case pepparse.OutputPretty:
		return gopretty.NewTableSink(stdout), nil
	case pepparse.OutputFile:
		return fs.NewCSVSink(dir, logger), nil
	default:
		return nil, pepparse.Errorf(pepparse.EINVALID, "unknown output %q", output)
	}
}

func defaultCachePath() string {
	return filepath.Join(xdg.CacheHome, AppName, "http_cache.sqlite")
}
