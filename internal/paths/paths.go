package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName names the ai-sync directory under the XDG config home.
const AppName = "ai-sync"

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// Home returns the user's home directory, or "" when it cannot be
// determined. Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the ai-sync config directory: <ConfigHome>/ai-sync.
func ConfigDir() string {
	return filepath.Join(ConfigHome(), AppName)
}

// hasHomePrefix reports whether p is "~" or starts with "~/" (or "~\").
func hasHomePrefix(p string) bool {
	if p == "~" {
		return true
	}
	return strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`)
}

// replaceHome swaps the leading "~" of p for base.
func replaceHome(p, base string) string {
	if p == "~" {
		return base
	}
	return filepath.Join(base, p[2:])
}

// ExpandHome replaces a leading "~" with the user's home directory. Other
// paths are returned unchanged.
func ExpandHome(p string) string {
	if !hasHomePrefix(p) {
		return p
	}
	home := Home()
	if home == "" {
		return p
	}
	return replaceHome(p, home)
}

// ProjectPath maps a home-relative tool path into projectDir. A path that
// does not start with "~" is taken relative to projectDir unless it is
// already absolute.
func ProjectPath(p, projectDir string) string {
	switch {
	case hasHomePrefix(p):
		return replaceHome(p, projectDir)
	case filepath.IsAbs(p):
		return p
	default:
		return filepath.Join(projectDir, p)
	}
}

// Abs expands "~" and makes p absolute relative to the working directory.
func Abs(p string) (string, error) {
	if p == "" {
		return "", errors.Wrap(ErrInvalidPath, "empty path")
	}
	abs, err := filepath.Abs(ExpandHome(p))
	if err != nil {
		return "", errors.Wrapf(err, "resolving %s", p)
	}
	return abs, nil
}

// IsClaudeTree reports whether any component of p is ".claude".
func IsClaudeTree(p string) bool {
	for _, part := range strings.Split(filepath.ToSlash(filepath.Clean(p)), "/") {
		if part == ".claude" {
			return true
		}
	}
	return false
}
