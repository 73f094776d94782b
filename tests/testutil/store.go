package testutil

import (
	"testing"

	"github.com/lmai/taskboard/internal/storage"
)

// NewTestLocal creates an in-memory local store. It automatically
// closes the store when the test completes.
func NewTestLocal(t *testing.T) *storage.Local {
	t.Helper()

	l, err := storage.Open(":memory:")
	if err != nil {
		t.Fatalf("creating test local store: %v", err)
	}

	t.Cleanup(func() {
		if err := l.Close(); err != nil {
			t.Errorf("closing test local store: %v", err)
		}
	})

	return l
}
