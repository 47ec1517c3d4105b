// pkg/shared/paths.go

package shared

import (
	"os"
	"path/filepath"
)

func GetEnvOrDefault(envVar, fallback string) string {
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return fallback
}

// StatePath returns the XDG state location for one of our files,
// e.g. ~/.local/state/securepass/securepass.log.
func StatePath(file string) string {
	base := GetEnvOrDefault("XDG_STATE_HOME", filepath.Join(os.Getenv("HOME"), ".local", "state"))
	return filepath.Join(base, AppID, file)
}

// EnsureParentDir creates the directory a file will live in. State
// directories hold logs and telemetry, so they stay owner-only.
func EnsureParentDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), DirPermPrivate)
}
