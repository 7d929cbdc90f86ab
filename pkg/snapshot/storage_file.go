package snapshot

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

const (
	snapshotFileName = "snapshot.bin"
	backupFileName   = "snapshot.bin.bak"
)

// FileStorage keeps the current snapshot in a directory. A new snapshot is written to a temporary
// file and renamed into place, and the previous one is kept as snapshot.bin.bak.
type FileStorage struct {
	dir    string
	logger zerolog.Logger
}

var _ Storage = (*FileStorage)(nil)

func NewFileStorage(dir string, logger zerolog.Logger) (*FileStorage, error) {
	if dir == "" {
		return nil, eris.New("snapshot directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, eris.Wrapf(err, "failed to create snapshot directory %s", dir)
	}
	return &FileStorage{dir: dir, logger: logger}, nil
}

func (f *FileStorage) Store(ctx context.Context, snapshot *Snapshot) error {
	if err := ctx.Err(); err != nil {
		return eris.Wrap(err, "store cancelled")
	}

	data, err := marshal(snapshot)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(f.dir, snapshotFileName+".*")
	if err != nil {
		return eris.Wrap(err, "failed to create temporary snapshot file")
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // already renamed on success

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return eris.Wrap(err, "failed to write snapshot")
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return eris.Wrap(err, "failed to sync snapshot")
	}
	if err := tmp.Close(); err != nil {
		return eris.Wrap(err, "failed to close snapshot")
	}

	current := filepath.Join(f.dir, snapshotFileName)
	if err := os.Rename(current, filepath.Join(f.dir, backupFileName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return eris.Wrap(err, "failed to back up previous snapshot")
	}
	if err := os.Rename(tmpName, current); err != nil {
		return eris.Wrap(err, "failed to move snapshot into place")
	}

	f.logger.Debug().
		Str("path", current).
		Stringer("id", snapshot.ID).
		Int("bytes", len(data)).
		Msg("snapshot stored")
	return nil
}

func (f *FileStorage) Load(ctx context.Context) (*Snapshot, error) {
	return f.load(ctx, snapshotFileName)
}

// LoadBackup retrieves the snapshot that was current before the last Store.
func (f *FileStorage) LoadBackup(ctx context.Context) (*Snapshot, error) {
	return f.load(ctx, backupFileName)
}

func (f *FileStorage) load(ctx context.Context, name string) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, eris.Wrap(err, "load cancelled")
	}

	path := filepath.Join(f.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, eris.Wrapf(ErrSnapshotNotFound, "no snapshot at %s", path)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "failed to read %s", path)
	}
	return unmarshal(data)
}
