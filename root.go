package extstore

import (
	"os"
	"path/filepath"
	"strings"

	ferrors "github.com/input-output-hk/catalyst-forge-libs/extstore/errors"
	"github.com/input-output-hk/catalyst-forge-libs/extstore/fs"
)

// Root is the External Root: the absolute directory that "/external/" paths
// resolve against. It is resolved once at startup, handed to New and never
// changes afterwards.
type Root struct {
	dir   string
	appID string
}

// Dir returns the absolute root directory.
func (r Root) Dir() string { return r.dir }

// AppID returns the application identity the root was derived from. It is
// empty for roots built with NewRoot.
func (r Root) AppID() string { return r.appID }

// String returns the root directory.
func (r Root) String() string { return r.dir }

// RootOption configures ResolveRoot.
type RootOption func(*rootOptions)

type rootOptions struct {
	appID string
}

// WithAppID sets the application identity instead of detecting it.
func WithAppID(id string) RootOption {
	return func(o *rootOptions) {
		o.appID = id
	}
}

// ResolveRoot derives the External Root from the application identity and
// creates the directory if needed.
//
// On Android the identity is the package name of the running process and the
// root is the app's directory under Android/data on the primary shared
// storage volume of the current user. Elsewhere the identity is the
// executable name and the root lives under the XDG data home.
func ResolveRoot(opts ...RootOption) (Root, error) {
	o := &rootOptions{}
	for _, opt := range opts {
		opt(o)
	}

	if o.appID == "" {
		id, err := appIdentity()
		if err != nil {
			return Root{}, ferrors.Wrap(err, ferrors.CodeInvalidConfig, "detect application identity")
		}
		o.appID = id
	}
	if err := validateAppID(o.appID); err != nil {
		return Root{}, err
	}

	return newRoot(externalFilesDir(o.appID), o.appID)
}

// NewRoot uses dir as the External Root. Relative paths are made absolute and
// the directory is created if missing.
func NewRoot(dir string) (Root, error) {
	return newRoot(dir, "")
}

func newRoot(dir, appID string) (Root, error) {
	if dir == "" {
		return Root{}, ferrors.New(ferrors.CodeInvalidConfig, "external storage directory is empty")
	}
	abs, err := fs.GetAbs(dir)
	if err != nil {
		return Root{}, ferrors.Wrap(err, ferrors.CodeInvalidConfig, "resolve external storage directory")
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return Root{}, ferrors.Wrap(err, ferrors.CodeInvalidConfig, "create external storage directory")
	}
	return Root{dir: abs, appID: appID}, nil
}

// validateAppID checks that id can be used as a single path element.
func validateAppID(id string) error {
	switch {
	case id == "":
		return ferrors.New(ferrors.CodeInvalidConfig, "application identity cannot be empty")
	case filepath.IsAbs(id), strings.ContainsAny(id, `/\`):
		return ferrors.New(ferrors.CodeInvalidConfig, "application identity cannot contain path separators")
	case id == "." || id == "..":
		return ferrors.New(ferrors.CodeInvalidConfig, "application identity contains invalid path components")
	}
	return nil
}
