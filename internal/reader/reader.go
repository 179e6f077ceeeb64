// Package reader walks a binary VDF buffer without modelling its structure:
// it anchors on tagged keys and decodes the single value that follows each
// one. Everything between two keys (map markers, record indices, fields that
// are not asked for) is skipped over by the key search.
package reader

import (
	"github.com/joshuapare/vdfkit/internal/buf"
)

// Reader is a forward-only position in an immutable buffer. It holds no state
// besides that position, so a fresh Reader per buffer is cheap and readers
// over different buffers may be used from different goroutines.
type Reader struct {
	cur *buf.Cursor
}

// New returns a Reader positioned at the start of data. data is never
// modified.
func New(data []byte) *Reader {
	return &Reader{cur: buf.NewCursor(data)}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.cur.Offset() }

// Done reports whether the whole buffer has been consumed.
func (r *Reader) Done() bool { return r.cur.Done() }
