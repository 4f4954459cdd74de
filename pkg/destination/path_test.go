package destination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"drive_letter_file", `C:\log.txt`, true},
		{"drive_letter_folders", `C:\logs\app\out.log`, true},
		{"drive_letter_forward_slashes", `C:/logs/out.log`, true},
		{"posix_rooted", "/var/log/out.log", true},
		{"posix_rooted_no_folders", "/a.log", true},
		{"empty", "", false},
		{"too_short", `C:\a`, false},
		{"relative", `logs/out.log`, false},
		{"no_extension", `C:\logs\out`, false},
		{"extension_too_short", `/var/log/out.go`, false},
		{"extension_too_long", `/var/log/out.extension9`, false},
		{"bare_drive", `C:\`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPath(tt.path), "path %q", tt.path)
		})
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		ambient  string
		wantPath string
		wantOK   bool
	}{
		{"explicit_wins", "/tmp/explicit.log", "/tmp/ambient.log", "/tmp/explicit.log", true},
		{"ambient_fallback", "", "/tmp/ambient.log", "/tmp/ambient.log", true},
		{"neither", "", "", "", false},
		{"explicit_invalid_no_fallback", "not-a-path", "/tmp/ambient.log", "", false},
		{"ambient_invalid", "", "nope", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := ResolvePath(Log, tt.explicit, tt.ambient)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantPath, path)
		})
	}
}
