package fs

import "os"

// Filesystem is the set of primitives a storage backend must provide.
// Errors are returned as produced by the backend so callers can inspect them
// with errors.Is against io/fs sentinels.
//
// The store itself needs OpenFile, ReadDir, Stat, MkdirAll and WriteFile; the
// rest complete the contract that fstest.TestSuite checks for any backend.
type Filesystem interface {
	Create(name string) (File, error)
	Exists(path string) (bool, error)
	MkdirAll(path string, perm os.FileMode) error
	Open(name string) (File, error)
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	ReadDir(dirname string) ([]os.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	Remove(name string) error
	Stat(name string) (os.FileInfo, error)
	WriteFile(filename string, data []byte, perm os.FileMode) error
}
