package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type sampleDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSaveAndLoadDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "doc.json")
	if err := SaveDocument(path, sampleDoc{Name: "a", Count: 1}); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	if _, err := os.Stat(BackupPath(path)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("backup created on first save: %v", err)
	}

	if err := SaveDocument(path, sampleDoc{Name: "b", Count: 2}); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	doc, fromBackup, err := LoadDocument[sampleDoc](path)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if fromBackup || doc.Name != "b" || doc.Count != 2 {
		t.Fatalf("loaded %+v fromBackup=%v", doc, fromBackup)
	}

	bak, _, err := LoadDocument[sampleDoc](BackupPath(path))
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if bak.Name != "a" {
		t.Fatalf("backup holds %+v, want previous document", bak)
	}
	if _, err := os.Stat(tempPath(path)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestLoadDocumentFallsBackToBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := SaveDocument(path, sampleDoc{Name: "old"}); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	if err := SaveDocument(path, sampleDoc{Name: "new"}); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}
	if err := os.WriteFile(path, []byte("{\"name\": "), 0o644); err != nil {
		t.Fatalf("corrupt: %v", err)
	}

	doc, fromBackup, err := LoadDocument[sampleDoc](path)
	if err != nil {
		t.Fatalf("LoadDocument: %v", err)
	}
	if !fromBackup || doc.Name != "old" {
		t.Fatalf("loaded %+v fromBackup=%v, want backup", doc, fromBackup)
	}
}

func TestLoadDocumentMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	_, _, err := LoadDocument[sampleDoc](path)
	if !errors.Is(err, ErrNoState) || !IsMissing(err) {
		t.Fatalf("err=%v, want missing StateError", err)
	}
}

func TestLoadDocumentUnusable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(BackupPath(path), []byte(""), 0o644); err != nil {
		t.Fatalf("write backup: %v", err)
	}
	_, _, err := LoadDocument[sampleDoc](path)
	var se *StateError
	if !errors.As(err, &se) || se.Missing {
		t.Fatalf("err=%v, want non-missing StateError", err)
	}
	if !errors.Is(err, ErrNoState) {
		t.Fatalf("StateError does not match ErrNoState")
	}
}

func TestSiblingPaths(t *testing.T) {
	if got := BackupPath("/data/character.json"); got != "/data/character.bak" {
		t.Fatalf("BackupPath=%q", got)
	}
	if got := tempPath("/data/achievements.json"); got != "/data/achievements.tmp" {
		t.Fatalf("tempPath=%q", got)
	}
}

func TestPreparedDocumentOnlyLandsOnCommit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := SaveDocument(path, sampleDoc{Name: "a", Count: 1}); err != nil {
		t.Fatalf("SaveDocument: %v", err)
	}

	pd, err := PrepareDocument(path, sampleDoc{Name: "b", Count: 2})
	if err != nil {
		t.Fatalf("PrepareDocument: %v", err)
	}
	doc, _, err := LoadDocument[sampleDoc](path)
	if err != nil || doc.Name != "a" {
		t.Fatalf("live document changed before commit: %+v %v", doc, err)
	}
	pd.Discard()
	if _, err := os.Stat(tempPath(path)); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("temp file kept after discard: %v", err)
	}

	pd, err = PrepareDocument(path, sampleDoc{Name: "c", Count: 3})
	if err != nil {
		t.Fatalf("PrepareDocument: %v", err)
	}
	if err := pd.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	pd.Discard()
	doc, _, err = LoadDocument[sampleDoc](path)
	if err != nil || doc.Name != "c" {
		t.Fatalf("after commit: %+v %v", doc, err)
	}
}
