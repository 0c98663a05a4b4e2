// Package errors provides the structured error codes used by extstore.
// It extends Go's standard error handling with string error codes that
// survive wrapping and can be matched with errors.Is.
package errors

// ErrorCode represents a specific error condition in extstore.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a requested file or directory does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// Access errors.

	// CodeUnsupportedAccess indicates an external path was opened in a mode the
	// external backend does not provide.
	CodeUnsupportedAccess ErrorCode = "UNSUPPORTED_ACCESS"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// String returns the string representation of the ErrorCode.
func (c ErrorCode) String() string {
	return string(c)
}
