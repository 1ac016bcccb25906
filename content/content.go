// Package content loads the accessibility-criteria document collection.
// The canonical artifact is embedded at build time and materialized into an
// immutable catalog exactly once per process; the a11yfetch tool regenerates
// the artifact from the upstream site.
package content

import (
	_ "embed"
	"encoding/json"
	"os"
	"sync"

	"github.com/accessibleweb/a11y"
)

//go:embed criteria.json
var artifact []byte

var (
	once    sync.Once
	catalog *a11y.Catalog
	loadErr error
)

// Load materializes the embedded collection on the first call and returns
// the same catalog instance on every subsequent call. Concurrent first calls
// perform at most one parse.
func Load() (*a11y.Catalog, error) {
	once.Do(func() {
		catalog, loadErr = Parse(artifact)
	})
	return catalog, loadErr
}

// Parse decodes a serialized collection and wraps it in a catalog.
// Structural invalidity returns EINTERNAL; missing platform keys are
// tolerated and behave as empty platforms.
func Parse(data []byte) (*a11y.Catalog, error) {
	var collection a11y.Collection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, a11y.Errorf(a11y.EINTERNAL, "invalid content artifact: %v", err)
	}
	return a11y.NewCatalog(collection)
}

// LoadFile reads and parses a collection artifact from disk. Used to serve
// a locally refreshed artifact instead of the embedded one.
func LoadFile(path string) (*a11y.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, a11y.Errorf(a11y.EINTERNAL, "read content artifact %q: %v", path, err)
	}
	return Parse(data)
}
