package store

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"dropengine/internal/infra"
	"dropengine/internal/usecase"

	"github.com/google/renameio/v2"
)

// FileStore keeps the snapshot in a single JSON file. Saves write a synced
// temp file next to it and rename it into place, so a crash leaves either the
// old snapshot or the new one.
type FileStore struct {
	path   string
	logger *slog.Logger
}

var _ usecase.SnapshotStore = (*FileStore)(nil)

func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load(_ context.Context) (*usecase.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "snapshot file not found", err)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to read snapshot file", err)
	}

	snap, err := decodeSnapshot(data)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to decode snapshot file", err)
	}
	return snap, nil
}

func (s *FileStore) Save(_ context.Context, snap *usecase.Snapshot) error {
	data, err := encodeSnapshot(snap)
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindCorrupt, "failed to encode snapshot", err)
	}
	if err := writeFileAtomic(s.path, data); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindIOFailure, "failed to write snapshot file", err)
	}
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return renameio.WriteFile(path, data, 0o644)
}
