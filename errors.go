package extstore

import (
	ferrors "github.com/input-output-hk/catalyst-forge-libs/extstore/errors"
)

var (
	// ErrUnsupportedMode is wrapped in the *fs.PathError returned when an
	// external path is opened with a mode other than read or write.
	ErrUnsupportedMode = ferrors.New(ferrors.CodeUnsupportedAccess, "failed to open external file stream")

	// ErrNonASCII is returned when text handed to WriteString contains a
	// character outside the single-byte ASCII range.
	ErrNonASCII = ferrors.New(ferrors.CodeInvalidInput, "text is not ascii")
)
