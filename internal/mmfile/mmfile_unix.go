//go:build unix

package mmfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// ReadFile returns the contents of the regular file at path. The bytes are
// copied out of a read-only mapping before it is released.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("mmfile: %s is not a regular file", path)
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, nil
	}
	if size > int64(^uint(0)>>1) {
		return nil, fmt.Errorf("mmfile: %s too large to map (%d bytes)", path, size)
	}

	mapped, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmfile: map %s: %w", path, err)
	}
	data, copyErr := copyMapped(mapped)
	if err := unix.Munmap(mapped); err != nil && copyErr == nil {
		return nil, fmt.Errorf("mmfile: unmap %s: %w", path, err)
	}
	if copyErr != nil {
		return nil, fmt.Errorf("mmfile: read %s: %w", path, copyErr)
	}
	return data, nil
}
