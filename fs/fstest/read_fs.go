package fstest

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/extstore/fs"
)

// TestReadFS tests read operations: Open, Stat, ReadDir, ReadFile, Exists.
func TestReadFS(t *testing.T, filesystem fs.Filesystem, root string) {
	testContent := []byte("test file content")

	if err := filesystem.MkdirAll(at(root, "testdir"), 0o755); err != nil {
		t.Fatalf("MkdirAll(testdir): setup failed: %v", err)
	}
	if err := filesystem.WriteFile(at(root, "testdir/testfile.txt"), testContent, 0o644); err != nil {
		t.Fatalf("WriteFile(testdir/testfile.txt): setup failed: %v", err)
	}

	t.Run("Open", func(t *testing.T) {
		testReadFSOpen(t, filesystem, root, testContent)
	})
	t.Run("FileStat", func(t *testing.T) {
		testReadFSFileStat(t, filesystem, root, testContent)
	})
	t.Run("StatDir", func(t *testing.T) {
		testReadFSStatDir(t, filesystem, root)
	})
	t.Run("ReadDir", func(t *testing.T) {
		testReadFSReadDir(t, filesystem, root)
	})
	t.Run("ReadFile", func(t *testing.T) {
		testReadFSReadFile(t, filesystem, root, testContent)
	})
	t.Run("OpenNotExist", func(t *testing.T) {
		testReadFSOpenNotExist(t, filesystem, root)
	})
	t.Run("Exists", func(t *testing.T) {
		testReadFSExists(t, filesystem, root)
	})
}

// testReadFSOpen tests Open() on existing file and reads contents.
func testReadFSOpen(t *testing.T, filesystem fs.Filesystem, root string, testContent []byte) {
	name := at(root, "testdir/testfile.txt")
	f, err := filesystem.Open(name)
	if err != nil {
		t.Errorf("Open(%q): got error %v, want nil", name, err)
		return
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			t.Errorf("Close(): got error %v", closeErr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		t.Errorf("ReadAll(): got error %v, want nil", err)
		return
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadAll(): got %q, want %q", data, testContent)
	}
}

// testReadFSFileStat tests Stat() on an open handle, the size source for read-all.
func testReadFSFileStat(t *testing.T, filesystem fs.Filesystem, root string, testContent []byte) {
	name := at(root, "testdir/testfile.txt")
	f, err := filesystem.Open(name)
	if err != nil {
		t.Errorf("Open(%q): got error %v, want nil", name, err)
		return
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		t.Errorf("File.Stat(): got error %v, want nil", err)
		return
	}
	if info.Size() != int64(len(testContent)) {
		t.Errorf("File.Stat(): Size() = %d, want %d", info.Size(), len(testContent))
	}

	// Advancing the offset must not change the reported size.
	if _, err := f.Seek(4, io.SeekStart); err != nil {
		t.Errorf("Seek(4): got error %v", err)
		return
	}
	info, err = f.Stat()
	if err != nil {
		t.Errorf("File.Stat() after seek: got error %v", err)
		return
	}
	if info.Size() != int64(len(testContent)) {
		t.Errorf("File.Stat() after seek: Size() = %d, want %d", info.Size(), len(testContent))
	}
}

// testReadFSStatDir tests Stat() on directory.
func testReadFSStatDir(t *testing.T, filesystem fs.Filesystem, root string) {
	name := at(root, "testdir")
	info, err := filesystem.Stat(name)
	if err != nil {
		t.Errorf("Stat(%q): got error %v, want nil", name, err)
		return
	}
	if !info.IsDir() {
		t.Errorf("Stat(%q): IsDir() = false, want true", name)
	}
}

// testReadFSReadDir tests ReadDir() on directory with files.
func testReadFSReadDir(t *testing.T, filesystem fs.Filesystem, root string) {
	name := at(root, "testdir")
	entries, err := filesystem.ReadDir(name)
	if err != nil {
		t.Errorf("ReadDir(%q): got error %v, want nil", name, err)
		return
	}
	if len(entries) != 1 {
		t.Errorf("ReadDir(%q): got %d entries, want 1", name, len(entries))
		return
	}
	if entries[0].Name() != "testfile.txt" {
		t.Errorf("ReadDir(%q): got entry name %q, want %q", name, entries[0].Name(), "testfile.txt")
	}
	if entries[0].IsDir() {
		t.Errorf("ReadDir(%q): entry IsDir() = true, want false", name)
	}
}

// testReadFSReadFile tests ReadFile() entire contents.
func testReadFSReadFile(t *testing.T, filesystem fs.Filesystem, root string, testContent []byte) {
	name := at(root, "testdir/testfile.txt")
	data, err := filesystem.ReadFile(name)
	if err != nil {
		t.Errorf("ReadFile(%q): got error %v, want nil", name, err)
		return
	}
	if !bytes.Equal(data, testContent) {
		t.Errorf("ReadFile(%q): got %q, want %q", name, data, testContent)
	}
}

// testReadFSOpenNotExist tests Open() non-existent file returns fs.ErrNotExist.
func testReadFSOpenNotExist(t *testing.T, filesystem fs.Filesystem, root string) {
	name := at(root, "nonexistent")
	_, err := filesystem.Open(name)
	if !errors.Is(err, iofs.ErrNotExist) {
		t.Errorf("Open(%q): got error %v, want fs.ErrNotExist", name, err)
	}
}

// testReadFSExists tests Exists() on a file, a directory and a missing path.
func testReadFSExists(t *testing.T, filesystem fs.Filesystem, root string) {
	cases := map[string]bool{
		"testdir/testfile.txt": true,
		"testdir":              true,
		"nonexistent":          false,
	}
	for rel, want := range cases {
		name := at(root, rel)
		got, err := filesystem.Exists(name)
		if err != nil {
			t.Errorf("Exists(%q): got error %v, want nil", name, err)
			continue
		}
		if got != want {
			t.Errorf("Exists(%q): got %v, want %v", name, got, want)
		}
	}
}
