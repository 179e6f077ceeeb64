package shortcut_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/vdfkit/pkg/shortcut"
)

func TestCommand(t *testing.T) {
	tests := []struct {
		name    string
		exe     string
		want    []string
		wantErr bool
	}{
		{"quoted program", `"anki"`, []string{"anki"}, false},
		{"path with spaces", `"/Applications/Second Life Viewer.app"`, []string{"/Applications/Second Life Viewer.app"}, false},
		{"bare program", "steam-runtime", []string{"steam-runtime"}, false},
		{"with arguments", `"/usr/bin/env" FOO=1 "game"`, []string{"/usr/bin/env", "FOO=1", "game"}, false},
		{"windows path", `"C:\Games\foo.exe" -windowed`, []string{`C:\Games\foo.exe`, "-windowed"}, false},
		{"empty", "", []string{}, false},
		{"unterminated quote", `"anki`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := shortcut.Shortcut{AppName: "x", Exe: tt.exe}.Command()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestWorkingDir(t *testing.T) {
	tests := []struct {
		startDir string
		want     string
	}{
		{`"./"`, "./"},
		{`"/usr/local/bin/"`, "/usr/local/bin/"},
		{`"C:\Games\"`, `C:\Games\`},
		{"/opt/game", "/opt/game"},
		{` "/srv" `, "/srv"},
		{`"`, `"`},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.startDir, func(t *testing.T) {
			require.Equal(t, tt.want, shortcut.Shortcut{StartDir: tt.startDir}.WorkingDir())
		})
	}
}
