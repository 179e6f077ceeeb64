package shortcut

import (
	"hash/crc32"
	"io"
)

const (
	steamIDHighBit = 0x80000000
	steamIDLow     = 0x02000000
)

// SteamID derives the 64-bit game ID Steam assigns a shortcut from its launch
// command and name: the CRC-32 (IEEE / ISO-HDLC) of exe followed by appName,
// with its top bit set, in the upper half and 0x02000000 in the lower half.
// Steam uses it in rungameid URLs and grid artwork file names.
func SteamID(exe, appName string) uint64 {
	h := crc32.NewIEEE()
	_, _ = io.WriteString(h, exe)
	_, _ = io.WriteString(h, appName)

	top := h.Sum32() | steamIDHighBit
	return uint64(top)<<32 | steamIDLow
}

// SteamID returns SteamID(s.Exe, s.AppName).
func (s Shortcut) SteamID() uint64 {
	return SteamID(s.Exe, s.AppName)
}
