package billy

import (
	"io/fs"

	"github.com/go-git/go-billy/v5"
)

// File wraps a go-billy File and satisfies the parent fs.File interface.
// Errors from the wrapped file are returned untouched.
type File struct {
	file billy.File
	fs   *FS
}

// Close implements File.Close.
func (f *File) Close() error {
	return f.file.Close()
}

// Name implements File.Name.
func (f *File) Name() string {
	return f.file.Name()
}

// Read implements File.Read.
func (f *File) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// ReadAt implements File.ReadAt.
func (f *File) ReadAt(p []byte, off int64) (int, error) {
	return f.file.ReadAt(p, off)
}

// Seek implements File.Seek.
func (f *File) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Stat implements File.Stat. OS-backed files answer from the open
// descriptor; other backends fall back to a lookup by name.
func (f *File) Stat() (fs.FileInfo, error) {
	if s, ok := f.file.(interface{ Stat() (fs.FileInfo, error) }); ok {
		return s.Stat()
	}
	return f.fs.Stat(f.file.Name())
}

// Write implements File.Write.
func (f *File) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Sync implements File.Sync. In-memory files have nothing to commit.
func (f *File) Sync() error {
	if s, ok := f.file.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}
