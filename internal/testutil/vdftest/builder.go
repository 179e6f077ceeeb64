// Package vdftest builds shortcuts.vdf buffers for tests, framed the way Steam
// writes them: a root "shortcuts" map holding one map per entry, keyed by its
// decimal index, each closed with a map-end marker.
package vdftest

import (
	"bytes"
	"encoding/binary"
	"strconv"

	"github.com/joshuapare/vdfkit/internal/format"
)

// KeyNames selects the spelling of the four extracted keys.
type KeyNames struct {
	AppID    string
	AppName  string
	Exe      string
	StartDir string
}

// DefaultKeyNames is the capitalisation current Steam clients write.
var DefaultKeyNames = KeyNames{
	AppID:    format.KeyAppID,
	AppName:  format.KeyAppName,
	Exe:      format.KeyExe,
	StartDir: format.KeyStartDir,
}

// Entry is one shortcut with the extra fields Steam stores alongside the
// extracted ones.
type Entry struct {
	AppID         uint32
	AppName       string
	Exe           string
	StartDir      string
	Icon          string
	LaunchOptions string
	Hidden        bool
	LastPlayTime  uint32
	Tags          []string
}

// Builder accumulates entries. The zero value is not usable; call New.
type Builder struct {
	Keys KeyNames

	body bytes.Buffer
	n    int
}

// New returns a builder with the root map already opened.
func New() *Builder {
	b := &Builder{Keys: DefaultKeyNames}
	b.body.Write(MapStart("shortcuts"))
	return b
}

// Add appends a complete entry.
func (b *Builder) Add(e Entry) *Builder {
	b.body.Write(MapStart(strconv.Itoa(b.n)))
	b.body.Write(Int32(b.Keys.AppID, e.AppID))
	b.body.Write(String(b.Keys.AppName, e.AppName))
	b.body.Write(String(b.Keys.Exe, e.Exe))
	b.body.Write(String(b.Keys.StartDir, e.StartDir))
	b.body.Write(String("icon", e.Icon))
	b.body.Write(String("ShortcutPath", ""))
	b.body.Write(String("LaunchOptions", e.LaunchOptions))
	b.body.Write(Int32("IsHidden", boolU32(e.Hidden)))
	b.body.Write(Int32("AllowDesktopConfig", 1))
	b.body.Write(Int32("AllowOverlay", 1))
	b.body.Write(Int32("OpenVR", 0))
	b.body.Write(Int32("LastPlayTime", e.LastPlayTime))
	b.body.Write(MapStart("tags"))
	for i, tag := range e.Tags {
		b.body.Write(String(strconv.Itoa(i), tag))
	}
	b.body.WriteByte(format.TypeMapEnd)
	b.body.WriteByte(format.TypeMapEnd)
	b.n++
	return b
}

// Raw appends bytes verbatim, for building damaged files.
func (b *Builder) Raw(p ...[]byte) *Builder {
	for _, chunk := range p {
		b.body.Write(chunk)
	}
	return b
}

// Bytes returns the file contents with the root map closed. The builder can
// keep accepting entries afterwards.
func (b *Builder) Bytes() []byte {
	out := make([]byte, 0, b.body.Len()+2)
	out = append(out, b.body.Bytes()...)
	return append(out, format.TypeMapEnd, format.TypeMapEnd)
}

// Unterminated returns the body without closing markers.
func (b *Builder) Unterminated() []byte {
	return bytes.Clone(b.body.Bytes())
}

// MapStart encodes the header of a nested map.
func MapStart(name string) []byte {
	out := []byte{format.TypeMap}
	out = append(out, name...)
	return append(out, format.Terminator)
}

// String encodes a TypeString entry.
func String(name, value string) []byte {
	out := []byte{format.TypeString}
	out = append(out, name...)
	out = append(out, format.Terminator)
	out = append(out, value...)
	return append(out, format.Terminator)
}

// Int32 encodes a TypeInt32 entry.
func Int32(name string, v uint32) []byte {
	out := []byte{format.TypeInt32}
	out = append(out, name...)
	out = append(out, format.Terminator)
	return binary.LittleEndian.AppendUint32(out, v)
}

func boolU32(v bool) uint32 {
	if v {
		return 1
	}
	return 0
}
