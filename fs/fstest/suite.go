// Package fstest provides a conformance test suite for extstore backends.
//
// Every fs.Filesystem that extstore routes through must pass it. The suite
// checks the interface contract the facade relies on (open for read, create
// and truncate for write, directory listing, size reporting and sync), not
// backend-specific behavior.
//
// Example usage:
//
//	func TestMyBackend(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (fs.Filesystem, string) {
//	        return mybackend.New(), "/"
//	    })
//	}
package fstest

import (
	"path"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/extstore/fs"
)

// Factory returns a fresh, empty filesystem and the directory inside it that
// the suite may populate. It is called once per test group.
type Factory func(t *testing.T) (fs.Filesystem, string)

// TestSuite runs all conformance tests against a filesystem.
func TestSuite(t *testing.T, newFS Factory) {
	TestSuiteWithSkip(t, newFS, nil)
}

// TestSuiteWithSkip runs conformance tests with optional test skipping.
// The skipTests parameter is a slice of test group names to skip (e.g., "SyncFS").
func TestSuiteWithSkip(t *testing.T, newFS Factory, skipTests []string) {
	shouldSkip := func(testName string) bool {
		for _, skip := range skipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	groups := []struct {
		name string
		run  func(t *testing.T, filesystem fs.Filesystem, root string)
	}{
		{"ReadFS", TestReadFS},
		{"WriteFS", TestWriteFS},
		{"SyncFS", TestSyncFS},
	}

	for _, g := range groups {
		t.Run(g.name, func(t *testing.T) {
			if shouldSkip(g.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			filesystem, root := newFS(t)
			g.run(t, filesystem, root)
		})
	}
}

// at joins name onto root using forward slashes, the separator every backend accepts.
func at(root, name string) string {
	return path.Join(root, name)
}
