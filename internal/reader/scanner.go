package reader

import (
	"github.com/joshuapare/vdfkit/internal/format"
)

// Seek advances past the next occurrence of k, matching ASCII letters without
// regard to case. It reports false, with the reader at end of data, when k
// does not occur in the remaining bytes.
//
// A partial match that fails is resumed at the byte that broke it; bytes
// already consumed by the partial match are never reconsidered as a start.
// This is correct only because format.NewKey guarantees the tag byte does not
// reoccur inside the pattern, and shortcuts.vdf never places a tag byte inside
// key or value text.
func (r *Reader) Seek(k format.Key) bool {
	pattern := k.Pattern()
	if len(pattern) == 0 {
		return false
	}

	for {
		b, ok := r.cur.Next()
		if !ok {
			return false
		}
		if !format.EqualFoldByte(pattern[0], b) {
			continue
		}

		matched := 1
		for {
			if matched == len(pattern) {
				return true
			}
			next, ok := r.cur.Peek()
			if !ok || !format.EqualFoldByte(pattern[matched], next) {
				// Leave the mismatching byte for the outer loop.
				break
			}
			r.cur.Next()
			matched++
		}
	}
}
