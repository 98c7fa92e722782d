package store

import (
	"os"
	"path/filepath"
	"strings"
)

// FileStore reads and writes the persisted roster document. Before
// overwriting an existing file, Save copies it aside as a .backup.json so a
// bad write can be recovered by hand.
type FileStore struct {
	Path string
}

// NewFileStore returns a store writing to path, or to the default
// data/scheduling_data.json when path is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = filepath.Join("data", "scheduling_data.json")
	}
	return &FileStore{Path: path}
}

// BackupPath is the sibling file the previous document is copied to on save.
func (f *FileStore) BackupPath() string {
	return strings.TrimSuffix(f.Path, ".json") + ".backup.json"
}

// Save writes the document, creating the data directory if needed and
// backing up any existing file first. A failed backup copy does not block
// the save.
func (f *FileStore) Save(data []byte) error {
	if dir := filepath.Dir(f.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	if prev, err := os.ReadFile(f.Path); err == nil {
		_ = os.WriteFile(f.BackupPath(), prev, 0o644)
	}

	return os.WriteFile(f.Path, data, 0o644)
}

// Load reads the document. A missing file surfaces as fs.ErrNotExist;
// callers treat that as a fresh start, not a failure.
func (f *FileStore) Load() ([]byte, error) {
	return os.ReadFile(f.Path)
}
