package format

import "errors"

var (
	// ErrTruncated indicates the buffer ended before a value was complete.
	ErrTruncated = errors.New("format: truncated buffer")
	// ErrKeyNotFound indicates a tagged key did not occur in the remaining bytes.
	ErrKeyNotFound = errors.New("format: key not found")
	// ErrInvalidKey indicates a key pattern that the scanner cannot match safely.
	ErrInvalidKey = errors.New("format: invalid key pattern")
)
