/* pkg/logger/paths.go */

package logger

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/CodeMonkeyCybersecurity/securepass/pkg/shared"
)

// PlatformLogPaths returns fallback log paths in order of priority for
// the platform. securepass is a user tool, so the XDG state directory
// comes first everywhere; system paths are never touched.
func PlatformLogPaths() []string {
	switch runtime.GOOS {
	case "linux", "darwin":
		return []string{
			shared.StatePath(shared.LogFileName), // e.g. ~/.local/state/securepass/securepass.log
			shared.FallbackLogPath,               // current working dir
			filepath.Join(os.TempDir(), shared.AppID, shared.LogFileName),
		}
	case "windows":
		return []string{
			filepath.Join(os.Getenv("LOCALAPPDATA"), shared.AppID, shared.LogFileName),
			shared.FallbackLogPath,
		}
	default:
		return []string{shared.FallbackLogPath}
	}
}
