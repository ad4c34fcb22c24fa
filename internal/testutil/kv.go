// internal/testutil/kv.go
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/apatelabs/apate/internal/kv"
)

// NewTestStore creates a temporary SQLite key-value store with migrations
// applied.
func NewTestStore(t *testing.T) *kv.SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := kv.Open(dbPath)
	if err != nil {
		t.Fatalf("create test store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	return store
}
