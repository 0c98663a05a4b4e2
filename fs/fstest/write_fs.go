package fstest

import (
	"bytes"
	"os"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/extstore/fs"
)

// TestWriteFS tests write operations: Create, OpenFile, WriteFile, MkdirAll, Remove.
func TestWriteFS(t *testing.T, filesystem fs.Filesystem, root string) {
	t.Run("CreateAndWrite", func(t *testing.T) {
		testWriteFSCreate(t, filesystem, root)
	})
	t.Run("WriteFile", func(t *testing.T) {
		testWriteFSWriteFile(t, filesystem, root)
	})
	t.Run("OpenFileTruncate", func(t *testing.T) {
		testWriteFSOpenFileTruncate(t, filesystem, root)
	})
	t.Run("OpenFileAppend", func(t *testing.T) {
		testWriteFSOpenFileAppend(t, filesystem, root)
	})
	t.Run("MkdirAll", func(t *testing.T) {
		testWriteFSMkdirAll(t, filesystem, root)
	})
	t.Run("Remove", func(t *testing.T) {
		testWriteFSRemove(t, filesystem, root)
	})
}

// testWriteFSCreate tests Create() new file, write data, verify contents.
func testWriteFSCreate(t *testing.T, filesystem fs.Filesystem, root string) {
	name := at(root, "testfile.txt")
	testData := []byte("test data for Create")

	f, err := filesystem.Create(name)
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", name, err)
	}

	n, err := f.Write(testData)
	if err != nil {
		_ = f.Close()
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if n != len(testData) {
		_ = f.Close()
		t.Fatalf("Write(): wrote %d bytes, want %d", n, len(testData))
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if !bytes.Equal(data, testData) {
		t.Errorf("ReadFile(%q): got %q, want %q", name, data, testData)
	}
}

// testWriteFSWriteFile tests WriteFile() and overwriting an existing file.
func testWriteFSWriteFile(t *testing.T, filesystem fs.Filesystem, root string) {
	name := at(root, "writefile.txt")

	if err := filesystem.WriteFile(name, []byte("first version"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): got error %v, want nil", name, err)
	}
	if err := filesystem.WriteFile(name, []byte("second"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q) overwrite: got error %v, want nil", name, err)
	}

	data, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if string(data) != "second" {
		t.Errorf("ReadFile(%q): got %q, want %q", name, data, "second")
	}
}

// testWriteFSOpenFileTruncate tests the flags used for write mode.
func testWriteFSOpenFileTruncate(t *testing.T, filesystem fs.Filesystem, root string) {
	name := at(root, "openfile.txt")
	if err := filesystem.WriteFile(name, []byte("a much longer original body"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
	}

	f, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q, O_WRONLY|O_CREATE|O_TRUNC): got error %v, want nil", name, err)
	}
	if _, err := f.Write([]byte("truncated")); err != nil {
		_ = f.Close()
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if string(data) != "truncated" {
		t.Errorf("ReadFile(%q) after truncate: got %q, want %q", name, data, "truncated")
	}
}

// testWriteFSOpenFileAppend tests O_APPEND, used by host "a" modes.
func testWriteFSOpenFileAppend(t *testing.T, filesystem fs.Filesystem, root string) {
	name := at(root, "append.txt")
	if err := filesystem.WriteFile(name, []byte("head"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
	}

	f, err := filesystem.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		t.Fatalf("OpenFile(%q, O_APPEND): got error %v, want nil", name, err)
	}
	if _, err := f.Write([]byte("+tail")); err != nil {
		_ = f.Close()
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	data, err := filesystem.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile(%q): got error %v, want nil", name, err)
	}
	if string(data) != "head+tail" {
		t.Errorf("ReadFile(%q) after append: got %q, want %q", name, data, "head+tail")
	}
}

// testWriteFSMkdirAll tests MkdirAll() nested directory creation.
func testWriteFSMkdirAll(t *testing.T, filesystem fs.Filesystem, root string) {
	name := at(root, "parent/child/grandchild")
	if err := filesystem.MkdirAll(name, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q): got error %v, want nil", name, err)
	}

	for _, rel := range []string{"parent", "parent/child", "parent/child/grandchild"} {
		p := at(root, rel)
		info, err := filesystem.Stat(p)
		if err != nil {
			t.Errorf("Stat(%q): got error %v, want nil", p, err)
			continue
		}
		if !info.IsDir() {
			t.Errorf("Stat(%q): IsDir() = false, want true", p)
		}
	}
}

// testWriteFSRemove tests Remove() on a file.
func testWriteFSRemove(t *testing.T, filesystem fs.Filesystem, root string) {
	name := at(root, "remove.txt")
	if err := filesystem.WriteFile(name, []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile(%q): setup failed: %v", name, err)
	}
	if err := filesystem.Remove(name); err != nil {
		t.Fatalf("Remove(%q): got error %v, want nil", name, err)
	}
	exists, err := filesystem.Exists(name)
	if err != nil {
		t.Fatalf("Exists(%q): got error %v", name, err)
	}
	if exists {
		t.Errorf("Exists(%q) after Remove: got true, want false", name)
	}
}

// TestSyncFS tests that Sync() succeeds on a freshly written handle.
func TestSyncFS(t *testing.T, filesystem fs.Filesystem, root string) {
	name := at(root, "sync.txt")
	f, err := filesystem.Create(name)
	if err != nil {
		t.Fatalf("Create(%q): got error %v, want nil", name, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write([]byte("durable")); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := f.Sync(); err != nil {
		t.Errorf("Sync(): got error %v, want nil", err)
	}
}
