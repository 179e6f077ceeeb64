// Package format houses the vocabulary of Valve's binary KeyValues ("binary
// VDF") container as it appears in shortcuts.vdf files. Only the pieces needed
// to anchor on a tagged key and decode the value that follows are modelled;
// nesting markers and record indices are left to the scanner to skip.
package format

// Type tags. Every binary VDF entry starts with one of these bytes, followed
// by the nul-terminated key name and then the value.
//
// Layout of a string entry:
//
//	0x01 'E' 'x' 'e' 0x00 '"' 'a' 'n' 'k' 'i' '"' 0x00
//
// Layout of an int32 entry:
//
//	0x02 'a' 'p' 'p' 'i' 'd' 0x00 <u32 little-endian>
const (
	TypeMap        byte = 0x00 // opens a nested map; the map name follows
	TypeString     byte = 0x01 // nul-terminated byte string
	TypeInt32      byte = 0x02 // 4-byte little-endian integer
	TypeFloat32    byte = 0x03
	TypePointer    byte = 0x04
	TypeWideString byte = 0x05
	TypeColor      byte = 0x06
	TypeUint64     byte = 0x07
	TypeMapEnd     byte = 0x08 // closes the innermost map
)

const (
	// Terminator ends key names and string values.
	Terminator byte = 0x00

	// Int32Size is the encoded width of a TypeInt32 value.
	Int32Size = 4
)

// Key names of the fields extracted from a shortcut entry. Steam has written
// these with varying capitalisation over time, so matching folds ASCII case.
const (
	KeyAppID    = "appid"
	KeyAppName  = "AppName"
	KeyExe      = "Exe"
	KeyStartDir = "StartDir"
)

// Locations of shortcuts files below a Steam installation:
//
//	<steam>/userdata/<account id>/config/shortcuts.vdf
const (
	UserdataDir       = "userdata"
	ConfigDir         = "config"
	ShortcutsFileName = "shortcuts.vdf"
)

// IsKnownType reports whether tag is one of the binary VDF type tags.
func IsKnownType(tag byte) bool {
	return tag <= TypeMapEnd
}
