// Package fs persists refreshed criteria collections to disk with
// atomic write semantics.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/accessibleweb/a11y"
	"github.com/cespare/xxhash/v2"
)

var _ a11y.ArtifactWriter = (*Writer)(nil)

// Writer serializes a collection to a JSON artifact. Writes go to a
// temporary file first and are renamed into place, so a crashed refresh
// never leaves a half-written artifact. Unchanged content is detected
// by hash and skipped.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given artifact path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the artifact path the writer targets.
func (w *Writer) Path() string {
	return w.path
}

// Write serializes the collection to the artifact path. Returns false
// when the existing artifact already holds identical content and
// nothing was written.
func (w *Writer) Write(collection a11y.Collection) (bool, error) {
	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		return false, a11y.Errorf(a11y.EINTERNAL, "failed to serialize collection: %v", err)
	}
	data = append(data, '\n')

	if existing, err := os.ReadFile(w.path); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64(data) {
			return false, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return false, err
	}

	tmp := w.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return false, err
	}
	if err := os.Rename(tmp, w.path); err != nil {
		os.Remove(tmp)
		return false, err
	}

	return true, nil
}
