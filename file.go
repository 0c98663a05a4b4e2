package extstore

import (
	"bufio"
	"errors"
	"io"
	iofs "io/fs"
	"log/slog"
	"unicode/utf8"

	"github.com/input-output-hk/catalyst-forge-libs/extstore/fs"
)

// ReadAll is the ReadN size that reads the rest of the file.
const ReadAll = -1

// File is an open handle on one path in one mode. It is either open or
// closed; Close moves it to closed and every later call except Close fails
// with fs.ErrClosed.
//
// A File is not safe for concurrent use.
type File struct {
	path   Path
	mode   Mode
	file   fs.File
	w      *bufio.Writer // nil unless the handle can write
	closed bool
	logger *slog.Logger
}

func newFile(p Path, mode Mode, f fs.File, flag, bufSize int, logger *slog.Logger) *File {
	h := &File{
		path:   p,
		mode:   mode,
		file:   f,
		logger: logger,
	}
	if writable(flag) {
		h.w = bufio.NewWriterSize(f, bufSize)
	}
	return h
}

// Path returns the tagged path the handle was opened with.
func (f *File) Path() Path { return f.path }

// Name returns the path as the caller wrote it.
func (f *File) Name() string { return f.path.String() }

// Mode returns the mode the handle was opened with.
func (f *File) Mode() Mode { return f.mode }

// Closed reports whether Close has been called.
func (f *File) Closed() bool { return f.closed }

// Read implements io.Reader.
func (f *File) Read(p []byte) (int, error) {
	if f.closed {
		return 0, f.pathErr("read", iofs.ErrClosed)
	}
	if err := f.drain(); err != nil {
		return 0, err
	}
	return f.file.Read(p)
}

// ReadN reads up to n bytes. With n == ReadAll it reads everything between
// the current offset and the end of the file, where the end is the file size
// reported by the backend at call time. A short result is not an error. At
// end of file a positive n yields io.EOF while ReadAll yields an empty slice.
func (f *File) ReadN(n int) ([]byte, error) {
	if f.closed {
		return nil, f.pathErr("read", iofs.ErrClosed)
	}
	if n < ReadAll {
		return nil, f.pathErr("read", iofs.ErrInvalid)
	}
	if err := f.drain(); err != nil {
		return nil, err
	}

	all := n == ReadAll
	if all {
		remaining, err := f.remaining()
		if err != nil {
			return nil, err
		}
		n = int(remaining)
	}
	if n == 0 {
		return []byte{}, nil
	}

	// Grows with the bytes read, not with n.
	buf, err := io.ReadAll(io.LimitReader(f.file, int64(n)))
	if err != nil {
		return nil, err
	}
	if len(buf) == 0 && !all {
		return buf, io.EOF
	}
	return buf, nil
}

// remaining is the file size minus the current offset, floored at zero.
func (f *File) remaining() (int64, error) {
	info, err := f.file.Stat()
	if err != nil {
		return 0, err
	}
	pos, err := f.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, err
	}
	return max(info.Size()-pos, 0), nil
}

// Write implements io.Writer. Bytes are buffered until Flush or Close.
func (f *File) Write(p []byte) (int, error) {
	if f.closed {
		return 0, f.pathErr("write", iofs.ErrClosed)
	}
	if f.w == nil {
		return f.file.Write(p)
	}
	return f.w.Write(p)
}

// WriteString implements io.StringWriter. Each character is written as one
// byte; text outside ASCII fails with ErrNonASCII and nothing is written.
func (f *File) WriteString(s string) (int, error) {
	if f.closed {
		return 0, f.pathErr("write", iofs.ErrClosed)
	}
	b, ok := encodeASCII(s)
	if !ok {
		return 0, f.pathErr("write", ErrNonASCII)
	}
	return f.Write(b)
}

// Flush pushes buffered writes to the backend and syncs the file. It is a
// no-op on read-only handles.
func (f *File) Flush() error {
	if f.closed {
		return f.pathErr("flush", iofs.ErrClosed)
	}
	if f.w == nil {
		return nil
	}
	if err := f.w.Flush(); err != nil {
		return err
	}
	return f.file.Sync()
}

// Close flushes pending writes and releases the stream. Calling Close on a
// closed handle does nothing and returns nil.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	var flushErr error
	if f.w != nil {
		flushErr = f.w.Flush()
	}
	closeErr := f.file.Close()

	err := flushErr
	switch {
	case flushErr != nil && closeErr != nil:
		err = errors.Join(flushErr, closeErr)
	case closeErr != nil:
		err = closeErr
	}
	if err != nil && f.logger != nil {
		f.logger.Warn("close failed",
			slog.String("path", f.path.String()),
			slog.Bool("external", f.path.IsExternal()),
			slog.Any("error", err),
		)
	}
	return err
}

// drain writes out buffered bytes so reads and offsets see them.
func (f *File) drain() error {
	if f.w == nil || f.w.Buffered() == 0 {
		return nil
	}
	return f.w.Flush()
}

func (f *File) pathErr(op string, err error) error {
	return &iofs.PathError{Op: op, Path: f.path.String(), Err: err}
}

// encodeASCII returns s as one byte per character.
func encodeASCII(s string) ([]byte, bool) {
	b := make([]byte, 0, len(s))
	for _, r := range s {
		if r >= utf8.RuneSelf {
			return nil, false
		}
		b = append(b, byte(r))
	}
	return b, true
}
