package extstore

import (
	"errors"
	iofs "io/fs"
	"log/slog"
	"os"
	pathpkg "path"
	"syscall"

	ferrors "github.com/input-output-hk/catalyst-forge-libs/extstore/errors"
	"github.com/input-output-hk/catalyst-forge-libs/extstore/fs"
	"github.com/input-output-hk/catalyst-forge-libs/extstore/fs/billy"
)

// Store routes file access to external storage or the host filesystem
// depending on the path.
//
// Thread Safety: a Store is immutable after New and safe for concurrent use.
// Handles it returns are not.
type Store struct {
	root       Root
	external   fs.Filesystem
	host       fs.Filesystem
	logger     *slog.Logger
	bufferSize int
}

// New creates a Store for root.
//
// Example usage:
//
//	root, err := ResolveRoot(WithAppID("org.example.notes"))
//	if err != nil {
//	    return err
//	}
//	store, err := New(root, WithLogger(slog.Default()))
func New(root Root, opts ...Option) (*Store, error) {
	if root.Dir() == "" {
		return nil, ferrors.New(ferrors.CodeInvalidConfig, "external root is not resolved")
	}

	options := defaultOptions()
	applyOptions(options, opts)

	external := options.external
	if external == nil {
		external = billy.NewOSFS(root.Dir())
	}
	host := options.host
	if host == nil {
		host = billy.NewBaseOSFS()
	}

	return &Store{
		root:       root,
		external:   external,
		host:       host,
		logger:     options.logger,
		bufferSize: options.bufferSize,
	}, nil
}

// Root returns the External Root the store was built with.
func (s *Store) Root() Root {
	return s.root
}

// ExternalStoragePath returns the External Root directory. The value is fixed
// for the lifetime of the store.
func (s *Store) ExternalStoragePath() string {
	return s.root.Dir()
}

// Resolve returns where p lives on the host and whether it is external.
// External paths are joined onto the External Root; host paths come back
// unchanged.
func (s *Store) Resolve(p string) (string, bool) {
	path := Classify(p)
	return path.resolve(s.root.Dir()), path.IsExternal()
}

// Open opens p in the given mode.
//
// For external paths mode must be ModeRead or ModeWrite; anything else fails
// with a *fs.PathError wrapping ErrUnsupportedMode and opens nothing. Writing
// to an external path whose directory does not exist fails with
// fs.ErrNotExist; directories are never created. Host paths take any
// fopen-style mode. Backend errors are returned unmodified.
func (s *Store) Open(p string, mode Mode) (*File, error) {
	path := Classify(p)

	var (
		flag int
		ok   bool
		err  error
	)
	if path.IsExternal() {
		if flag, ok = mode.externalFlag(); !ok {
			return nil, &iofs.PathError{Op: "open", Path: p, Err: ErrUnsupportedMode}
		}
	} else if flag, err = mode.hostFlag(); err != nil {
		return nil, &iofs.PathError{Op: "open", Path: p, Err: err}
	}

	s.debug("open",
		slog.String("path", p),
		slog.Bool("external", path.IsExternal()),
		slog.String("mode", string(mode)),
	)

	backend := s.backend(path)
	if path.IsExternal() && flag&os.O_CREATE != 0 {
		if err := checkParent(backend, p, path.backendName()); err != nil {
			return nil, err
		}
	}
	f, err := backend.OpenFile(path.backendName(), flag, 0o666)
	if err != nil {
		return nil, err
	}
	return newFile(path, mode, f, flag, s.bufferSize, s.logger), nil
}

// WithFile opens p, passes the handle to fn and closes it on every exit path,
// including a panic in fn. The error from fn takes precedence over the error
// from Close.
func (s *Store) WithFile(p string, mode Mode, fn func(f *File) error) (err error) {
	f, err := s.Open(p, mode)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(f)
}

// ListDir returns the names of the entries in directory p, in no particular
// order.
func (s *Store) ListDir(p string) ([]string, error) {
	path := Classify(p)
	s.debug("listdir", slog.String("path", p), slog.Bool("external", path.IsExternal()))

	infos, err := s.backend(path).ReadDir(path.backendName())
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name())
	}
	return names, nil
}

// checkParent fails like a native open when the directory that would hold
// name is missing or is not a directory. Backends such as go-billy's create
// parents on O_CREATE; external storage does not.
func checkParent(backend fs.Filesystem, p, name string) error {
	dir := pathpkg.Dir(name)
	if dir == "/" || dir == "." {
		return nil
	}
	info, err := backend.Stat(dir)
	switch {
	case err == nil && !info.IsDir():
		return &iofs.PathError{Op: "open", Path: p, Err: syscall.ENOTDIR}
	case err == nil:
		return nil
	case errors.Is(err, iofs.ErrNotExist):
		return &iofs.PathError{Op: "open", Path: p, Err: syscall.ENOENT}
	default:
		return err
	}
}

//nolint:ireturn // the backend is chosen at runtime.
func (s *Store) backend(path Path) fs.Filesystem {
	if path.IsExternal() {
		return s.external
	}
	return s.host
}

func (s *Store) debug(msg string, attrs ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, attrs...)
	}
}
