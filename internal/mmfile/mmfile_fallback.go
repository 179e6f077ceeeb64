//go:build !unix

package mmfile

import (
	"fmt"
	"os"
)

// ReadFile returns the contents of the regular file at path.
func ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("mmfile: %s is not a regular file", path)
	}
	return os.ReadFile(path)
}
