package extstore

import (
	iofs "io/fs"
	"log/slog"
	"path"
	"strings"
)

// Seed copies the tree under srcDir in src to dest, creating directories and
// overwriting existing files. dest is classified like any other path, so
// "/external/assets" seeds external storage. It is typically called with an
// embed.FS on first run to ship default data.
func (s *Store) Seed(src iofs.FS, srcDir, dest string) error {
	target := Classify(dest)
	backend := s.backend(target)
	base := target.backendName()

	return iofs.WalkDir(src, srcDir, func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := relTo(srcDir, p)
		name := path.Join(base, rel)
		if d.IsDir() {
			return backend.MkdirAll(name, 0o755)
		}

		data, err := iofs.ReadFile(src, p)
		if err != nil {
			return err
		}
		s.debug("seed",
			slog.String("source", p),
			slog.String("path", path.Join(dest, rel)),
			slog.Bool("external", target.IsExternal()),
		)
		return backend.WriteFile(name, data, 0o644)
	})
}

// relTo returns p relative to dir, both slash-separated io/fs paths.
func relTo(dir, p string) string {
	if dir == "." {
		return p
	}
	if p == dir {
		return ""
	}
	return strings.TrimPrefix(p, dir+"/")
}
