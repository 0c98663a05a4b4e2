//go:build !android

package extstore

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// appIdentity returns the executable name without its extension.
func appIdentity() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	base := filepath.Base(exe)
	return strings.TrimSuffix(base, filepath.Ext(base)), nil
}

// externalFilesDir places external storage under the XDG data home.
func externalFilesDir(appID string) string {
	return filepath.Join(xdg.DataHome, appID, "external")
}
