package fs

import (
	"path/filepath"
	"testing"
)

func TestGetAbs(t *testing.T) {
	t.Run("absolute path passthrough", func(t *testing.T) {
		abs := "/tmp"
		got, err := GetAbs(abs)
		if err != nil {
			t.Fatalf("GetAbs(%q) returned error: %v", abs, err)
		}
		if got != abs {
			t.Errorf("GetAbs(%q) = %q, want %q", abs, got, abs)
		}
	})

	t.Run("relative path conversion", func(t *testing.T) {
		got, err := GetAbs("external")
		if err != nil {
			t.Fatalf("GetAbs(external) returned error: %v", err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("GetAbs(external) = %q, want absolute path", got)
		}
		if filepath.Base(got) != "external" {
			t.Errorf("GetAbs(external) = %q, want base %q", got, "external")
		}
	})
}
