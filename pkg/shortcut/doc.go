// Package shortcut reads the non-Steam game shortcuts that Steam keeps in
// userdata/<account>/config/shortcuts.vdf.
//
// shortcuts.vdf is a binary KeyValues file. Rather than decoding the whole
// container, this package anchors on the four keys it needs (appid, AppName,
// Exe, StartDir) and skips everything in between, matching key names without
// regard to ASCII case because different Steam versions capitalise them
// differently.
//
// Example:
//
//	for _, s := range shortcut.Discover("/home/me/.local/share/Steam") {
//	    fmt.Printf("%d %s (%#x)\n", s.AppID, s.AppName, s.SteamID())
//	}
//
// Parse is the building block for callers that obtain the file bytes
// themselves. It is a pure function of its input and safe for concurrent use.
package shortcut
