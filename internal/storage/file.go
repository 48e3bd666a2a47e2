package storage

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore keeps the value in a single file on disk.  The parent
// directory is created on first save.  Saves go through a temp file and
// rename so a crash mid-write never leaves a truncated collection.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore writing to the given path.
func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

// Load reads the file.  A missing file means nothing has been saved yet.
func (s *FileStore) Load() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Save writes the value atomically via a temp file in the same directory.
func (s *FileStore) Save(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".bookings-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, s.path)
}
