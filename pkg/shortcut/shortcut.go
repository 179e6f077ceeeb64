package shortcut

// Shortcut is a non-Steam game added to a Steam library.
type Shortcut struct {
	// AppID is the identifier Steam stored for the shortcut. It is taken as
	// is; no range is implied.
	AppID uint32 `json:"app_id" yaml:"app_id"`
	// AppName is the name shown in the library.
	AppName string `json:"app_name" yaml:"app_name"`
	// Exe is the launch command, either a bare program name or a path, and
	// usually wrapped in double quotes.
	Exe string `json:"exe" yaml:"exe"`
	// StartDir is the directory the program is started in, usually quoted.
	StartDir string `json:"start_dir" yaml:"start_dir"`
}
