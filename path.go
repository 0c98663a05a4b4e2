package extstore

import (
	"path/filepath"
	"strings"
)

// ExternalPrefix marks a path as living in external storage.
const ExternalPrefix = "/external/"

// Kind says which backend a Path belongs to.
type Kind int

const (
	// KindHost paths go to the host filesystem unchanged.
	KindHost Kind = iota
	// KindExternal paths are resolved against the External Root.
	KindExternal
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	if k == KindExternal {
		return "external"
	}
	return "host"
}

// Path is a caller-supplied path tagged with the backend it belongs to.
// Build one with Classify.
type Path struct {
	kind Kind
	raw  string
	rel  string
}

// Classify tags p as external when it starts with ExternalPrefix and as host
// otherwise. Exactly one leading prefix is stripped; the remainder is not
// cleaned or validated.
func Classify(p string) Path {
	if rel, ok := strings.CutPrefix(p, ExternalPrefix); ok {
		return Path{kind: KindExternal, raw: p, rel: rel}
	}
	return Path{kind: KindHost, raw: p}
}

// Kind returns the backend the path belongs to.
func (p Path) Kind() Kind { return p.kind }

// IsExternal reports whether the path is served from external storage.
func (p Path) IsExternal() bool { return p.kind == KindExternal }

// Rel returns the part after ExternalPrefix. It is empty for host paths.
func (p Path) Rel() string { return p.rel }

// String returns the path as the caller wrote it.
func (p Path) String() string { return p.raw }

// resolve returns the host location of p given the External Root directory.
func (p Path) resolve(rootDir string) string {
	if !p.IsExternal() {
		return p.raw
	}
	return filepath.Join(rootDir, p.rel)
}

// backendName is the name handed to the backend. The external backend is
// bound to the External Root, so names there are rooted at "/".
func (p Path) backendName() string {
	if !p.IsExternal() {
		return p.raw
	}
	return "/" + p.rel
}
