package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "scheduling_data.json")
	st := NewFileStore(path)

	want := []byte(`{"employees": []}`)
	if err := st.Save(want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := st.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Expected %s, got %s", want, got)
	}
}

func TestFileStore_BackupOnOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheduling_data.json")
	st := NewFileStore(path)

	first := []byte(`{"version": 1}`)
	second := []byte(`{"version": 2}`)

	if err := st.Save(first); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if _, err := os.Stat(st.BackupPath()); err == nil {
		t.Error("Expected no backup after first save")
	}

	if err := st.Save(second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	backup, err := os.ReadFile(st.BackupPath())
	if err != nil {
		t.Fatalf("Expected backup file, got %v", err)
	}
	if string(backup) != string(first) {
		t.Errorf("Expected backup to hold previous document, got %s", backup)
	}

	current, _ := st.Load()
	if string(current) != string(second) {
		t.Errorf("Expected current document, got %s", current)
	}
}

func TestFileStore_LoadMissing(t *testing.T) {
	st := NewFileStore(filepath.Join(t.TempDir(), "nope.json"))

	_, err := st.Load()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected fs.ErrNotExist for missing file, got %v", err)
	}
}

func TestNewFileStore_DefaultPath(t *testing.T) {
	st := NewFileStore("")
	if st.Path != filepath.Join("data", "scheduling_data.json") {
		t.Errorf("Unexpected default path %q", st.Path)
	}
}
