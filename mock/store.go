package mock

import (
	"context"

	"github.com/fwojciec/pepparse"
)

var _ pepparse.ArchiveStore = (*ArchiveStore)(nil)

// ArchiveStore is a mock implementation of pepparse.ArchiveStore.
type ArchiveStore struct {
	SaveArchiveFn func(ctx context.Context, name string, data []byte) (string, error)
}

func (s *ArchiveStore) SaveArchive(ctx context.Context, name string, data []byte) (string, error) {
	return s.SaveArchiveFn(ctx, name, data)
}
