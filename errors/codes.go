package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// URL composition errors
const (
	// ErrCodeInvalidHost indicates the host cannot appear in a URL authority.
	ErrCodeInvalidHost ErrorCode = "INVALID_HOST"
	// ErrCodeInvalidPort indicates the port is outside 0..65535.
	ErrCodeInvalidPort ErrorCode = "INVALID_PORT"
	// ErrCodeInvalidPath indicates the assembled path cannot follow an authority.
	ErrCodeInvalidPath ErrorCode = "INVALID_PATH"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Lookup errors
const (
	// ErrCodeNotFound indicates the requested family or route does not exist.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// String returns the code as a plain string.
func (c ErrorCode) String() string { return string(c) }
