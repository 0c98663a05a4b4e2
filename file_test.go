package extstore

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "github.com/input-output-hk/catalyst-forge-libs/extstore/errors"
)

func openExternal(t *testing.T, s *Store, p string, mode Mode) *File {
	t.Helper()
	f, err := s.Open(p, mode)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestFile_ReadN(t *testing.T) {
	s := newTestStore(t)
	writeExternal(t, s, "/external/digits.txt", "0123456789")

	t.Run("bounded reads advance", func(t *testing.T) {
		f := openExternal(t, s, "/external/digits.txt", ModeRead)

		got, err := f.ReadN(3)
		require.NoError(t, err)
		assert.Equal(t, "012", string(got))

		got, err = f.ReadN(4)
		require.NoError(t, err)
		assert.Equal(t, "3456", string(got))
	})

	t.Run("short read at end is not an error", func(t *testing.T) {
		f := openExternal(t, s, "/external/digits.txt", ModeRead)

		got, err := f.ReadN(100)
		require.NoError(t, err)
		assert.Equal(t, "0123456789", string(got))
	})

	t.Run("eof with positive n", func(t *testing.T) {
		f := openExternal(t, s, "/external/digits.txt", ModeRead)
		_, err := f.ReadN(ReadAll)
		require.NoError(t, err)

		got, err := f.ReadN(1)
		assert.ErrorIs(t, err, io.EOF)
		assert.Empty(t, got)
	})

	t.Run("read all after partial read returns the rest", func(t *testing.T) {
		f := openExternal(t, s, "/external/digits.txt", ModeRead)

		_, err := f.ReadN(6)
		require.NoError(t, err)

		rest, err := f.ReadN(ReadAll)
		require.NoError(t, err)
		assert.Equal(t, "6789", string(rest))

		again, err := f.ReadN(ReadAll)
		require.NoError(t, err)
		assert.Empty(t, again)
	})

	t.Run("huge n is bounded by the data", func(t *testing.T) {
		f := openExternal(t, s, "/external/digits.txt", ModeRead)

		got, err := f.ReadN(math.MaxInt)
		require.NoError(t, err)
		assert.Equal(t, "0123456789", string(got))

		_, err = f.ReadN(math.MaxInt)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("zero", func(t *testing.T) {
		f := openExternal(t, s, "/external/digits.txt", ModeRead)
		got, err := f.ReadN(0)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("negative below sentinel is invalid", func(t *testing.T) {
		f := openExternal(t, s, "/external/digits.txt", ModeRead)
		_, err := f.ReadN(-2)
		assert.ErrorIs(t, err, fs.ErrInvalid)
	})

	t.Run("empty file", func(t *testing.T) {
		writeExternal(t, s, "/external/empty.txt", "")
		f := openExternal(t, s, "/external/empty.txt", ModeRead)
		got, err := f.ReadN(ReadAll)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestFile_ReadImplementsReader(t *testing.T) {
	s := newTestStore(t)
	writeExternal(t, s, "/external/reader.txt", "stream me")

	f := openExternal(t, s, "/external/reader.txt", ModeRead)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "stream me", string(data))
}

func TestFile_WriteBytesAndText(t *testing.T) {
	s := newTestStore(t)

	f := openExternal(t, s, "/external/mixed.bin", ModeWrite)
	n, err := f.Write([]byte{0x00, 0xff})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = f.WriteString("ab")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, f.Close())

	data, err := os.ReadFile(filepath.Join(s.ExternalStoragePath(), "mixed.bin"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 'a', 'b'}, data)
}

func TestFile_WriteStringRejectsNonASCII(t *testing.T) {
	s := newTestStore(t)

	f := openExternal(t, s, "/external/text.txt", ModeWrite)
	n, err := f.WriteString("café")
	require.Error(t, err)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, ErrNonASCII)
	assert.Equal(t, ferrors.CodeInvalidInput, ferrors.CodeOf(err))
	require.NoError(t, f.Close())

	data, err := os.ReadFile(filepath.Join(s.ExternalStoragePath(), "text.txt"))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestFile_WriteTruncates(t *testing.T) {
	s := newTestStore(t)
	writeExternal(t, s, "/external/trunc.txt", "a long first body")
	writeExternal(t, s, "/external/trunc.txt", "short")

	data, err := os.ReadFile(filepath.Join(s.ExternalStoragePath(), "trunc.txt"))
	require.NoError(t, err)
	assert.Equal(t, "short", string(data))
}

func TestFile_Flush(t *testing.T) {
	s := newTestStore(t)
	p := filepath.Join(s.ExternalStoragePath(), "flushed.txt")

	f := openExternal(t, s, "/external/flushed.txt", ModeWrite)
	_, err := f.WriteString("pending")
	require.NoError(t, err)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Empty(t, data, "writes stay buffered until flush")

	require.NoError(t, f.Flush())
	data, err = os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "pending", string(data))

	r := openExternal(t, s, "/external/flushed.txt", ModeRead)
	assert.NoError(t, r.Flush(), "flush on a read handle is a no-op")
}

func TestFile_BufferSizeOption(t *testing.T) {
	s := newTestStore(t, WithBufferSize(4))
	p := filepath.Join(s.ExternalStoragePath(), "small.txt")

	f := openExternal(t, s, "/external/small.txt", ModeWrite)
	_, err := f.WriteString("123456")
	require.NoError(t, err)

	// A 4-byte buffer cannot hold 6 bytes, so some reached the file.
	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestFile_ReadSeesOwnBufferedWrites(t *testing.T) {
	s := newTestStore(t)
	p := filepath.Join(t.TempDir(), "rw.txt")

	f, err := s.Open(p, "w+")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	_, err = f.WriteString("abc")
	require.NoError(t, err)

	// The buffered bytes are drained before the offset is measured.
	rest, err := f.ReadN(ReadAll)
	require.NoError(t, err)
	assert.Empty(t, rest)

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, int64(3), info.Size())
}

func TestFile_Close(t *testing.T) {
	s := newTestStore(t)

	t.Run("double close", func(t *testing.T) {
		f, err := s.Open("/external/twice.txt", ModeWrite)
		require.NoError(t, err)
		assert.False(t, f.Closed())

		assert.NoError(t, f.Close())
		assert.True(t, f.Closed())
		assert.NoError(t, f.Close())
	})

	t.Run("close flushes", func(t *testing.T) {
		f, err := s.Open("/external/flush-on-close.txt", ModeWrite)
		require.NoError(t, err)
		_, err = f.WriteString("kept")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		data, err := os.ReadFile(filepath.Join(s.ExternalStoragePath(), "flush-on-close.txt"))
		require.NoError(t, err)
		assert.Equal(t, "kept", string(data))
	})

	t.Run("operations after close fail", func(t *testing.T) {
		f, err := s.Open("/external/closed.txt", ModeWrite)
		require.NoError(t, err)
		require.NoError(t, f.Close())

		_, err = f.Write([]byte("x"))
		assert.ErrorIs(t, err, fs.ErrClosed)
		_, err = f.WriteString("x")
		assert.ErrorIs(t, err, fs.ErrClosed)
		_, err = f.ReadN(1)
		assert.ErrorIs(t, err, fs.ErrClosed)
		_, err = f.Read(make([]byte, 1))
		assert.ErrorIs(t, err, fs.ErrClosed)
		assert.ErrorIs(t, f.Flush(), fs.ErrClosed)
	})
}

func TestFile_Accessors(t *testing.T) {
	s := newTestStore(t)
	f := openExternal(t, s, "/external/meta.txt", "write")

	assert.Equal(t, "/external/meta.txt", f.Name())
	assert.Equal(t, Mode("write"), f.Mode())
	assert.True(t, f.Path().IsExternal())
	assert.Equal(t, "meta.txt", f.Path().Rel())
}

func TestFile_CloseFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	s := newTestStore(t, WithLogger(logger))

	f, err := s.Open("/external/logged-close.txt", ModeWrite)
	require.NoError(t, err)

	// Release the descriptor behind the handle's back so Close fails.
	require.NoError(t, f.file.Close())

	err = f.Close()
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrClosed)
	assert.Contains(t, buf.String(), "close failed")
	assert.Contains(t, buf.String(), "path=/external/logged-close.txt")
}

func TestEncodeASCII(t *testing.T) {
	b, ok := encodeASCII("hello")
	assert.True(t, ok)
	assert.Equal(t, []byte("hello"), b)

	b, ok = encodeASCII("")
	assert.True(t, ok)
	assert.Empty(t, b)

	_, ok = encodeASCII("naïve")
	assert.False(t, ok)

	_, ok = encodeASCII(string([]byte{0xff}))
	assert.False(t, ok)
}
