//go:build android

package extstore

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// sharedStorage is the mount point of the emulated primary storage volume.
	sharedStorage = "/storage/emulated"

	// perUserRange is the size of the uid block Android assigns to each user.
	perUserRange = 100000
)

// appIdentity returns the package name. Android names an app's process after
// its package, optionally followed by ":<process>".
func appIdentity() (string, error) {
	data, err := os.ReadFile("/proc/self/cmdline")
	if err != nil {
		return "", err
	}
	name, _, _ := bytes.Cut(data, []byte{0})
	name, _, _ = bytes.Cut(name, []byte{':'})
	if len(name) == 0 {
		return "", errors.New("empty process name")
	}
	return string(name), nil
}

// externalFilesDir mirrors Context.getExternalFilesDir(null).
func externalFilesDir(appID string) string {
	user := os.Getuid() / perUserRange
	return filepath.Join(sharedStorage, strconv.Itoa(user), "Android", "data", appID, "files")
}
