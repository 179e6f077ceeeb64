// Package buf contains a bounds-checked cursor for decoding routines that walk
// an in-memory buffer one byte at a time.
package buf

import "bytes"

// Cursor is a read position over an immutable byte slice. The zero value is
// an empty cursor. None of its methods panic on out-of-range input; a failed
// read leaves the cursor exhausted, like a consumed iterator.
type Cursor struct {
	data []byte
	off  int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int { return c.off }

// Len returns the number of bytes left to read.
func (c *Cursor) Len() int { return len(c.data) - c.off }

// Done reports whether the cursor is at end of data.
func (c *Cursor) Done() bool { return c.off >= len(c.data) }

// Next consumes and returns one byte.
func (c *Cursor) Next() (byte, bool) {
	if c.Done() {
		return 0, false
	}
	b := c.data[c.off]
	c.off++
	return b, true
}

// Peek returns the next byte without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.Done() {
		return 0, false
	}
	return c.data[c.off], true
}

// Take consumes exactly n bytes. When fewer remain, the rest of the buffer is
// consumed and ok is false.
func (c *Cursor) Take(n int) ([]byte, bool) {
	if n < 0 || n > c.Len() {
		c.off = len(c.data)
		return nil, false
	}
	out := c.data[c.off : c.off+n]
	c.off += n
	return out, true
}

// Until consumes bytes up to and including the next occurrence of delim and
// returns the bytes before it. When delim does not occur, the rest of the
// buffer is consumed and ok is false.
func (c *Cursor) Until(delim byte) ([]byte, bool) {
	rest := c.data[c.off:]
	i := bytes.IndexByte(rest, delim)
	if i < 0 {
		c.off = len(c.data)
		return nil, false
	}
	c.off += i + 1
	return rest[:i], true
}
