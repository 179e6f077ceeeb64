// Package mmfile supplies the raw bytes of small on-disk files. On unix the
// file is memory-mapped and copied out of the mapping, so callers always get
// a private heap slice that stays valid whatever happens to the file later.
package mmfile

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// ErrFault reports that the mapped file shrank while it was being copied,
// typically because another process truncated it to rewrite it.
var ErrFault = errors.New("mmfile: file changed while reading")

// copyMapped copies src into a new slice. A fault raised while touching src
// (SIGBUS on a page past the new end of a truncated file) becomes ErrFault
// instead of killing the process.
func copyMapped(src []byte) (out []byte, err error) {
	defer debug.SetPanicOnFault(debug.SetPanicOnFault(true))
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if f, ok := r.(interface{ Addr() uintptr }); ok {
			out, err = nil, fmt.Errorf("%w (fault at %#x)", ErrFault, f.Addr())
			return
		}
		panic(r)
	}()

	out = make([]byte, len(src))
	copy(out, src)
	return out, nil
}
