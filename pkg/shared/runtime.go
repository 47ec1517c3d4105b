// pkg/shared/runtime.go

package shared

import "go.uber.org/zap"

// Version is stamped at build time via
// -ldflags "-X github.com/CodeMonkeyCybersecurity/securepass/pkg/shared.Version=...".
var Version = "dev"

// SafeSync flushes the global logger. Sync errors are swallowed: zap
// returns EINVAL/ENOTTY when stdout is a terminal and there is nothing
// actionable to do about either.
func SafeSync() {
	_ = zap.L().Sync()
}
