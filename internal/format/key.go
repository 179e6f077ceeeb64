package format

import (
	"fmt"
	"unicode/utf8"
)

// Key is a tagged key pattern: the type tag, the ASCII key name and the nul
// terminator, exactly as the entry header appears in the file.
//
// The scanner restarts a failed partial match at the byte that broke it
// instead of backtracking over bytes it already consumed. That is only sound
// when the tag byte cannot occur again inside the pattern, so NewKey refuses
// patterns that violate it. Callers rely on the same property of the value
// bytes that follow a key; the control-byte tags used by shortcuts.vdf never
// appear in key names or in the text Steam stores there.
type Key struct {
	pattern []byte
}

// NewKey builds the pattern for a key named name carrying values of type tag.
func NewKey(tag byte, name string) (Key, error) {
	if !IsKnownType(tag) {
		return Key{}, fmt.Errorf("%w: unknown type tag 0x%02x", ErrInvalidKey, tag)
	}
	if name == "" {
		return Key{}, fmt.Errorf("%w: empty name", ErrInvalidKey)
	}

	pattern := make([]byte, 0, len(name)+2)
	pattern = append(pattern, tag)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= utf8.RuneSelf {
			return Key{}, fmt.Errorf("%w: non-ASCII byte 0x%02x in %q", ErrInvalidKey, c, name)
		}
		if c == Terminator {
			return Key{}, fmt.Errorf("%w: nul byte in %q", ErrInvalidKey, name)
		}
		pattern = append(pattern, c)
	}
	pattern = append(pattern, Terminator)

	for i := 1; i < len(pattern); i++ {
		if EqualFoldByte(pattern[i], tag) {
			return Key{}, fmt.Errorf("%w: tag 0x%02x reoccurs at position %d of %q",
				ErrInvalidKey, tag, i, name)
		}
	}
	return Key{pattern: pattern}, nil
}

// MustKey is like NewKey but panics on an invalid pattern. Intended for
// package-level key variables.
func MustKey(tag byte, name string) Key {
	k, err := NewKey(tag, name)
	if err != nil {
		panic(err)
	}
	return k
}

// Tag returns the type tag.
func (k Key) Tag() byte {
	if len(k.pattern) == 0 {
		return 0
	}
	return k.pattern[0]
}

// Name returns the key name without tag or terminator.
func (k Key) Name() string {
	if len(k.pattern) < 2 {
		return ""
	}
	return string(k.pattern[1 : len(k.pattern)-1])
}

// Pattern returns the raw bytes to search for. The slice must not be modified.
func (k Key) Pattern() []byte { return k.pattern }

// Len returns the pattern length in bytes.
func (k Key) Len() int { return len(k.pattern) }

// IsZero reports whether k was never built through NewKey.
func (k Key) IsZero() bool { return len(k.pattern) == 0 }

func (k Key) String() string {
	return fmt.Sprintf("0x%02x%q", k.Tag(), k.Name())
}

// Canonical keys of a shortcut entry, in the order they appear.
var (
	AppIDKey    = MustKey(TypeInt32, KeyAppID)
	AppNameKey  = MustKey(TypeString, KeyAppName)
	ExeKey      = MustKey(TypeString, KeyExe)
	StartDirKey = MustKey(TypeString, KeyStartDir)
)

// EqualFoldByte compares two bytes ignoring ASCII case.
func EqualFoldByte(a, b byte) bool {
	if a == b {
		return true
	}
	if a >= 'A' && a <= 'Z' {
		a += 'a' - 'A'
	}
	if b >= 'A' && b <= 'Z' {
		b += 'a' - 'A'
	}
	return a == b
}
