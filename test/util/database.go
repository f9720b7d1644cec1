// Package util provides test utilities and helper functions for database
// testing.
package util

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/thoth-ai/thoth/ent"
	"github.com/thoth-ai/thoth/ent/enttest"

	_ "github.com/mattn/go-sqlite3"
)

var dbCounter atomic.Int64

// NewEntClient opens an isolated in-memory SQLite ent client with the full
// schema created. The client is closed when the test ends.
func NewEntClient(t *testing.T) *ent.Client {
	t.Helper()

	// A distinct shared-cache name per call keeps parallel tests isolated
	// while letting the pool's connections see the same database.
	dsn := fmt.Sprintf("file:thothtest%d?mode=memory&cache=shared&_fk=1", dbCounter.Add(1))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() {
		_ = client.Close()
	})
	return client
}
