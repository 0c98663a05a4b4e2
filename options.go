package extstore

import (
	"log/slog"

	"github.com/input-output-hk/catalyst-forge-libs/extstore/fs"
)

// defaultBufferSize is the write buffer size of a File handle.
const defaultBufferSize = 4096

// storeOptions holds configuration options for a Store.
type storeOptions struct {
	logger     *slog.Logger
	external   fs.Filesystem
	host       fs.Filesystem
	bufferSize int
}

// Option is a functional option for configuring a Store.
type Option func(*storeOptions)

// WithLogger configures the store with a custom logger.
// If logger is nil, logging will be disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *storeOptions) {
		opts.logger = logger
	}
}

// WithExternalFS replaces the external backend. Names it receives are rooted
// at "/", which stands for the External Root.
// If fsys is nil, an OS filesystem bound to the root directory is used.
func WithExternalFS(fsys fs.Filesystem) Option {
	return func(opts *storeOptions) {
		opts.external = fsys
	}
}

// WithHostFS replaces the host backend. It receives non-external paths
// exactly as the caller wrote them.
// If fsys is nil, the native host filesystem is used.
func WithHostFS(fsys fs.Filesystem) Option {
	return func(opts *storeOptions) {
		opts.host = fsys
	}
}

// WithBufferSize sets the write buffer size of handles opened by the store.
// Values below 1 keep the default.
func WithBufferSize(n int) Option {
	return func(opts *storeOptions) {
		if n > 0 {
			opts.bufferSize = n
		}
	}
}

// defaultOptions returns the default configuration options.
func defaultOptions() *storeOptions {
	return &storeOptions{
		logger:     nil, // No default logger
		bufferSize: defaultBufferSize,
	}
}

// applyOptions applies the given options to the store options.
func applyOptions(opts *storeOptions, options []Option) {
	for _, option := range options {
		option(opts)
	}
}
