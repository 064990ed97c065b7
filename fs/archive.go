// Package fs provides file-based storage for downloads and results.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pepparse"
)

// DownloadsDir is the directory, relative to the base directory, that
// archives are written to.
const DownloadsDir = "downloads"

// Ensure ArchiveStore implements pepparse.ArchiveStore at compile time.
var _ pepparse.ArchiveStore = (*ArchiveStore)(nil)

// ArchiveStore writes downloaded archives to baseDir/downloads.
type ArchiveStore struct {
	baseDir string
}

// NewArchiveStore creates a new ArchiveStore rooted at baseDir.
func NewArchiveStore(baseDir string) *ArchiveStore {
	return &ArchiveStore{baseDir: baseDir}
}

// SaveArchive writes data to downloads/name, replacing any existing file.
func (s *ArchiveStore) SaveArchive(ctx context.Context, name string, data []byte) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", pepparse.Errorf(pepparse.EINVALID, "invalid archive name %q", name)
	}

	dir := filepath.Join(s.baseDir, DownloadsDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := writeFileAtomic(path, data); err != nil {
		return "", err
	}
	return path, nil
}

// writeFileAtomic writes data to path.tmp and renames it into place, so a
// failed write never leaves a truncated file at path.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}
