package billy

import (
	"errors"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// BaseOSFS is a billy.Filesystem that acts like the native filesystem.
// Paths are used exactly as given: absolute paths hit the host root and
// relative paths resolve against the working directory. It backs every
// non-external path.
//
// Unlike osfs.ChrootOS, opening with O_CREATE does not create missing parent
// directories; the call fails the same way os.OpenFile does.
type BaseOSFS struct {
	osfs.ChrootOS
}

// Create creates or truncates the named file.
//
//nolint:ireturn // billy.File is an interface; signature is dictated by upstream.
func (b *BaseOSFS) Create(filename string) (billy.File, error) {
	return b.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o666)
}

// OpenFile opens the named file with os.OpenFile.
//
//nolint:ireturn // billy.File is an interface; signature is dictated by upstream.
func (b *BaseOSFS) OpenFile(filename string, flag int, perm os.FileMode) (billy.File, error) {
	f, err := os.OpenFile(filename, flag, perm)
	if err != nil {
		return nil, err
	}
	return &hostFile{File: f}, nil
}

// Capabilities implements billy.Capable. Host files are not lockable.
func (b *BaseOSFS) Capabilities() billy.Capability {
	return billy.DefaultCapabilities &^ billy.LockCapability
}

// Chroot returns a new filesystem rooted at the provided path.
//
//nolint:ireturn // billy.Filesystem is an interface; signature is dictated by upstream.
func (b *BaseOSFS) Chroot(path string) (billy.Filesystem, error) {
	return osfs.New(path), nil
}

// Root returns the root path for this filesystem.
func (b *BaseOSFS) Root() string {
	return "/"
}

// NewBaseOSFS creates the host filesystem backend.
func NewBaseOSFS() *FS {
	return &FS{
		fs: &BaseOSFS{},
	}
}

// hostFile is an *os.File satisfying billy.File. Stat and Sync are promoted
// from the descriptor.
type hostFile struct {
	*os.File
}

func (f *hostFile) Lock() error {
	return &os.PathError{Op: "lock", Path: f.Name(), Err: errors.ErrUnsupported}
}

func (f *hostFile) Unlock() error {
	return &os.PathError{Op: "unlock", Path: f.Name(), Err: errors.ErrUnsupported}
}
