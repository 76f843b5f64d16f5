package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoState is matched (errors.Is) by every StateError.
var ErrNoState = errors.New("no usable state")

// StateError reports that neither a document nor its backup could be loaded.
// Missing distinguishes a first run (nothing on disk) from corruption.
type StateError struct {
	Path    string
	Missing bool
	Err     error
}

func (e *StateError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: no saved state", e.Path)
	}
	return fmt.Sprintf("%s: no usable state (document and backup unreadable): %v", e.Path, e.Err)
}

func (e *StateError) Unwrap() error { return e.Err }

func (e *StateError) Is(target error) bool { return target == ErrNoState }

// IsMissing reports whether err is a StateError for a document that was never written.
func IsMissing(err error) bool {
	var se *StateError
	return errors.As(err, &se) && se.Missing
}

// BackupPath returns the .bak sibling of a document path.
func BackupPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".bak"
}

func tempPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".tmp"
}

// SaveDocument writes v as indented JSON so that path always holds either the
// previous complete document or the new one.
func SaveDocument(path string, v any) error {
	pd, err := PrepareDocument(path, v)
	if err != nil {
		return err
	}
	return pd.Commit()
}

// PendingDocument is a document whose new contents are synced to a temporary
// sibling but not yet renamed over the live file.
type PendingDocument struct {
	path string
	tmp  string
}

// PrepareDocument encodes v, writes it to a synced temporary sibling and
// copies the current file to the .bak sibling. Nothing at path changes until
// Commit.
func PrepareDocument(path string, v any) (*PendingDocument, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	tmp := tempPath(path)
	if err := writeSynced(tmp, data); err != nil {
		_ = os.Remove(tmp)
		return nil, err
	}

	if _, err := os.Stat(path); err == nil {
		if err := copyFile(path, BackupPath(path)); err != nil {
			_ = os.Remove(tmp)
			return nil, fmt.Errorf("backup %s: %w", filepath.Base(path), err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		_ = os.Remove(tmp)
		return nil, fmt.Errorf("stat %s: %w", filepath.Base(path), err)
	}
	return &PendingDocument{path: path, tmp: tmp}, nil
}

// Commit renames the prepared contents over the live document.
func (d *PendingDocument) Commit() error {
	if err := os.Rename(d.tmp, d.path); err != nil {
		_ = os.Remove(d.tmp)
		return fmt.Errorf("replace %s: %w", filepath.Base(d.path), err)
	}
	syncDir(filepath.Dir(d.path))
	return nil
}

// Discard drops the prepared contents. It is safe to call after Commit.
func (d *PendingDocument) Discard() {
	_ = os.Remove(d.tmp)
}

// LoadDocument decodes the document at path. When the primary file is missing
// or unreadable it falls back to the .bak sibling and reports fromBackup=true.
// If neither yields a document the error is a *StateError.
func LoadDocument[T any](path string) (doc *T, fromBackup bool, err error) {
	doc, primaryErr := decodeFile[T](path)
	if primaryErr == nil {
		return doc, false, nil
	}

	bak := BackupPath(path)
	doc, bakErr := decodeFile[T](bak)
	if bakErr == nil {
		return doc, true, nil
	}

	primaryMissing := errors.Is(primaryErr, fs.ErrNotExist)
	bakMissing := errors.Is(bakErr, fs.ErrNotExist)
	if primaryMissing && bakMissing {
		return nil, false, &StateError{Path: path, Missing: true, Err: primaryErr}
	}
	if bakMissing {
		return nil, false, &StateError{Path: path, Err: primaryErr}
	}
	return nil, false, &StateError{Path: path, Err: errors.Join(primaryErr, bakErr)}
}

func decodeFile[T any](path string) (*T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, fmt.Errorf("decode %s: empty document", filepath.Base(path))
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return &v, nil
}

func writeSynced(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// syncDir makes the rename durable where the platform supports it.
func syncDir(dir string) {
	d, err := os.Open(dir)
	if err != nil {
		return
	}
	_ = d.Sync()
	_ = d.Close()
}
