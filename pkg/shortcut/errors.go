package shortcut

import (
	"errors"
	"fmt"

	"github.com/joshuapare/vdfkit/internal/format"
)

var (
	// ErrMalformed matches every error returned by Parse.
	ErrMalformed = errors.New("shortcut: malformed shortcuts file")
	// ErrKeyNotFound is wrapped when an entry lacks one of its required keys.
	ErrKeyNotFound = format.ErrKeyNotFound
	// ErrTruncated is wrapped when a value runs past the end of the data.
	ErrTruncated = format.ErrTruncated
)

// ParseError reports where Parse rejected a buffer.
type ParseError struct {
	Record int    // zero-based index of the entry being decoded
	Key    string // key that was missing or whose value was cut short
	Offset int    // bytes consumed when decoding stopped
	Err    error  // wraps ErrKeyNotFound or ErrTruncated
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("shortcut: entry %d: key %q at offset %d: %v", e.Record, e.Key, e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrMalformed.
func (e *ParseError) Is(target error) bool { return target == ErrMalformed }
