package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_Is(t *testing.T) {
	sentinel := New(CodeUnsupportedAccess, "unsupported")

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "same code different message",
			err:  New(CodeUnsupportedAccess, "other message"),
			want: true,
		},
		{
			name: "different code",
			err:  New(CodeInvalidInput, "unsupported"),
			want: false,
		},
		{
			name: "wrapped in path error",
			err:  &fs.PathError{Op: "open", Path: "/external/a", Err: sentinel},
			want: true,
		},
		{
			name: "wrapped with fmt",
			err:  fmt.Errorf("context: %w", New(CodeUnsupportedAccess, "x")),
			want: true,
		},
		{
			name: "plain error",
			err:  stderrors.New("unsupported"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stderrors.Is(tt.err, sentinel))
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, Wrap(nil, CodeInternal, "boom"))
	})

	t.Run("keeps cause", func(t *testing.T) {
		err := Wrap(fs.ErrNotExist, CodeNotFound, "root missing")
		require.Error(t, err)
		assert.ErrorIs(t, err, fs.ErrNotExist)
		assert.Equal(t, CodeNotFound, CodeOf(err))
		assert.Equal(t, "root missing: file does not exist", err.Error())
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeUnknown, CodeOf(stderrors.New("plain")))
	assert.Equal(t, CodeUnknown, CodeOf(nil))
	assert.Equal(t, CodeInvalidConfig, CodeOf(fmt.Errorf("x: %w", New(CodeInvalidConfig, "bad"))))
	assert.Equal(t, "INVALID_CONFIGURATION", CodeInvalidConfig.String())
}
