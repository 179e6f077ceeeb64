package shortcut

import (
	"github.com/joshuapare/vdfkit/internal/format"
	"github.com/joshuapare/vdfkit/internal/reader"
)

// Parse extracts the shortcuts stored in the contents of a shortcuts.vdf
// file, in the order they occur.
//
// Each entry starts at an appid key. When no appid key remains, the entries
// collected so far are returned, so a buffer without any yields an empty
// slice. Once an entry has started, its AppName, Exe and StartDir keys must
// follow in that order. If one of them is missing, or any value runs past the
// end of data, the buffer as a whole is rejected: Parse returns a *ParseError
// and no shortcuts at all, including entries that decoded cleanly before the
// damage.
//
// data is not modified or retained.
func Parse(data []byte) ([]Shortcut, error) {
	r := reader.New(data)
	shortcuts := make([]Shortcut, 0)

	for {
		if !r.Seek(format.AppIDKey) {
			return shortcuts, nil
		}
		s, err := readEntry(r, len(shortcuts))
		if err != nil {
			return nil, err
		}
		shortcuts = append(shortcuts, s)
	}
}

// readEntry decodes one entry with r positioned just past its appid key.
func readEntry(r *reader.Reader, index int) (Shortcut, error) {
	fail := func(k format.Key, err error) error {
		return &ParseError{Record: index, Key: k.Name(), Offset: r.Offset(), Err: err}
	}

	var (
		s   Shortcut
		err error
	)
	if s.AppID, err = r.Uint32(); err != nil {
		return Shortcut{}, fail(format.AppIDKey, err)
	}
	if s.AppName, err = readString(r, format.AppNameKey); err != nil {
		return Shortcut{}, fail(format.AppNameKey, err)
	}
	if s.Exe, err = readString(r, format.ExeKey); err != nil {
		return Shortcut{}, fail(format.ExeKey, err)
	}
	if s.StartDir, err = readString(r, format.StartDirKey); err != nil {
		return Shortcut{}, fail(format.StartDirKey, err)
	}
	return s, nil
}

func readString(r *reader.Reader, k format.Key) (string, error) {
	if !r.Seek(k) {
		return "", format.ErrKeyNotFound
	}
	return r.String()
}
