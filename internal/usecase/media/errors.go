package media

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound means the referenced media item or folder asset does not exist.
	ErrNotFound = errors.New("media: not found")
	// ErrObjectNotFound means the blob key does not exist in the object store.
	ErrObjectNotFound = errors.New("storage: object not found")
	// ErrBucketNotFound means the configured bucket does not exist.
	ErrBucketNotFound = errors.New("storage: bucket not found")
	// ErrStoreUnavailable covers network/auth failures against the object store.
	ErrStoreUnavailable = errors.New("storage: unavailable")
)

// ValidationError rejects input before any I/O happens. Reasons identify the
// offending files or fields one by one.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

func newValidationError(format string, a ...any) *ValidationError {
	return &ValidationError{Reasons: []string{fmt.Sprintf(format, a...)}}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
