package shortcut

import (
	"fmt"
	"strings"

	"github.com/kballard/go-shellquote"
)

// Command splits Exe into the program and its arguments using POSIX shell
// quoting, which is how Steam quotes the field. Backslashes inside double
// quotes are kept unless they escape a quote, a backslash, '$' or '`'.
func (s Shortcut) Command() ([]string, error) {
	words, err := shellquote.Split(s.Exe)
	if err != nil {
		return nil, fmt.Errorf("shortcut %q: split exe: %w", s.AppName, err)
	}
	return words, nil
}

// WorkingDir returns StartDir without the double quotes Steam wraps it in.
// Quotes are stripped literally, so a trailing backslash in a Windows path
// survives.
func (s Shortcut) WorkingDir() string {
	dir := strings.TrimSpace(s.StartDir)
	if len(dir) >= 2 && dir[0] == '"' && dir[len(dir)-1] == '"' {
		return dir[1 : len(dir)-1]
	}
	return dir
}
